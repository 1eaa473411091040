package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/docdailey/qrand/internal/qrand"
)

// Config is the on-disk CLI configuration shared by qdice and qcrypto.
type Config struct {
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `yaml:"timeout"  mapstructure:"timeout"`
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".qrand"), nil
}

// loadConfig resolves the layered configuration: built-in defaults, then
// the config file when present, then QRAND_* env overrides. A missing
// file is not an error.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("base_url", qrand.DefaultBaseURL)
	v.SetDefault("timeout", qrand.DefaultTimeout)

	// Env overrides: QRAND_BASE_URL, QRAND_TIMEOUT
	v.SetEnvPrefix("QRAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		var pathErr *fs.PathError
		if !errors.As(err, &nf) && !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
