package catalog

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	structValidator *validator.Validate
	validatorOnce   sync.Once
)

func validate() *validator.Validate {
	validatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidator
}
