package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/Paintersrp/stark/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// GetConfigDir returns the directory holding the config file, the .env
// overrides and the log file.
func GetConfigDir(homeDir string) string {
	return filepath.Join(homeDir, constants.ConfigDir)
}

func configDirName() string {
	return constants.ConfigDir
}

func envPrefix() string {
	return constants.EnvPrefix
}

// LoadEnvFile reads optional KEY=value overrides from the config directory.
// Variables already present in the environment win.
func LoadEnvFile(homeDir string) error {
	path := filepath.Join(GetConfigDir(homeDir), constants.EnvFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

func EnsureConfigExists(homeDir string) error {
	configPath := GetConfigPath(homeDir)
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		file, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	cfg, err := Load(homeDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.CurrentWorkspace == "" {
		return &ConfigInitError{msg: "no current workspace is configured"}
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return err
	}

	if ws.DataDir == "" {
		return &ConfigInitError{msg: `required config variable "DataDir" is not set`}
	}

	return nil
}
