package main

import (
	"context"
	"os"

	"github.com/rcliao/aiplayland-journey/internal/cli"
)

func main() {
	if err := cli.RootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
