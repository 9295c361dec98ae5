package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load("")
	gt.NoError(t, err).Required()
	gt.Value(t, cfg.Log.Level).Equal("info")
	gt.Value(t, cfg.Log.Format).Equal("json")
	gt.Value(t, cfg.Server.Addr).Equal(":8080")
	gt.Value(t, cfg.Server.CookieName).Equal("aiplayland_visitor")
	gt.Bool(t, strings.HasSuffix(cfg.DB.Path, filepath.Join(".aiplayland", "journey.db"))).True()
	gt.Value(t, cfg.Catalog.Path).Equal("")
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journey.yaml")
	body := `db:
  path: /tmp/from-file.db
log:
  level: debug
  format: console
server:
  addr: ":9090"
`
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o644)).Required()
	t.Setenv("JOURNEY_SERVER_ADDR", ":7070")
	t.Setenv("JOURNEY_SERVER_COOKIE_NAME", "vid")

	cfg, err := Load(path)
	gt.NoError(t, err).Required()
	gt.Value(t, cfg.DB.Path).Equal("/tmp/from-file.db")
	gt.Value(t, cfg.Log.Level).Equal("debug")
	gt.Value(t, cfg.Log.Format).Equal("console")
	gt.Value(t, cfg.Server.Addr).Equal(":7070")
	gt.Value(t, cfg.Server.CookieName).Equal("vid")
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "other.yaml")
	gt.NoError(t, os.WriteFile(path, []byte("catalog:\n  path: /srv/catalog.yaml\n"), 0o644)).Required()
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load("")
	gt.NoError(t, err).Required()
	gt.Value(t, cfg.Catalog.Path).Equal("/srv/catalog.yaml")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	gt.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("bad level", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Log.Level = "loud"
		gt.Error(t, cfg.Validate())
	})

	t.Run("bad format", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Log.Format = "xml"
		gt.Error(t, cfg.Validate())
	})

	t.Run("cookie names must differ", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Server.RevealCookieName = cfg.Server.CookieName
		gt.Error(t, cfg.Validate())
	})

	t.Run("empty db path", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.DB.Path = ""
		gt.Error(t, cfg.Validate())
	})
}

func TestEnvTransform(t *testing.T) {
	gt.Value(t, envTransform("JOURNEY_DB_PATH")).Equal("db.path")
	gt.Value(t, envTransform("JOURNEY_SERVER_REVEAL_COOKIE_NAME")).Equal("server.reveal_cookie_name")
}
