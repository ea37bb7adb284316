// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dsbox/dsbox/constant"
	"github.com/dsbox/dsbox/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "DSBOX_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden via the DSBOX_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// ConfigFile resolves the path of the TOML configuration file inside Config.
func ConfigFile() string {
	return filepath.Join(Config(), fmt.Sprintf("%s.%s", constant.App, "toml"))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
