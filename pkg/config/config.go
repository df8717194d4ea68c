package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	// Storage
	DBPath string `mapstructure:"db_path"`

	// Postal code lookup provider
	CEPBaseURL string        `mapstructure:"cep_base_url"`
	CEPTimeout time.Duration `mapstructure:"cep_timeout"`

	// Optional API settings
	APIHost string `mapstructure:"api_host"`
	APIPort int    `mapstructure:"api_port"`

	// Optional SSL settings
	SSLCert string `mapstructure:"ssl_cert"`
	SSLKey  string `mapstructure:"ssl_key"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Optional logging settings
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`

	// Path of the config file actually read, empty when running on defaults
	ConfigPath string `mapstructure:"-"`
}

const (
	DefaultDBPath     = "instance/idosos.db"
	DefaultCEPBaseURL = "https://viacep.com.br"
	DefaultCEPTimeout = 5 * time.Second
	DefaultAPIHost    = "0.0.0.0"
	DefaultAPIPort    = 5000
	DefaultLogLevel   = "info"
	EnvPrefix         = "IDOSOS"
)

// Load reads configuration from, in increasing priority: defaults, the YAML
// file, a .env file in the working directory and IDOSOS_* environment
// variables. An explicit configPath must exist; without one the file is
// optional and searched as idosos.yml in the working directory and
// /etc/idosos.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	// Set defaults
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("cep_base_url", DefaultCEPBaseURL)
	v.SetDefault("cep_timeout", DefaultCEPTimeout)
	v.SetDefault("api_host", DefaultAPIHost)
	v.SetDefault("api_port", DefaultAPIPort)
	v.SetDefault("ssl_cert", "")
	v.SetDefault("ssl_key", "")
	v.SetDefault("cors_origins", []string{})
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", DefaultLogLevel)

	// Allow environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configPath == "" {
		configPath = findConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultConfigPaths are tried in order when no config file is given
var DefaultConfigPaths = []string{"idosos.yml", "/etc/idosos/idosos.yml"}

func findConfigFile() string {
	for _, p := range DefaultConfigPaths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if c.APIPort < 1 || c.APIPort > 65535 {
		return fmt.Errorf("api_port must be between 1 and 65535, got %d", c.APIPort)
	}

	u, err := url.Parse(c.CEPBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("cep_base_url must be an absolute URL: %q", c.CEPBaseURL)
	}

	if c.CEPTimeout <= 0 {
		return fmt.Errorf("cep_timeout must be positive")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	// Validate SSL config if provided
	if c.SSLCert != "" || c.SSLKey != "" {
		if c.SSLCert == "" || c.SSLKey == "" {
			return fmt.Errorf("both ssl_cert and ssl_key must be provided")
		}
		if _, err := os.Stat(c.SSLCert); os.IsNotExist(err) {
			return fmt.Errorf("ssl_cert file does not exist: %s", c.SSLCert)
		}
		if _, err := os.Stat(c.SSLKey); os.IsNotExist(err) {
			return fmt.Errorf("ssl_key file does not exist: %s", c.SSLKey)
		}
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv(EnvPrefix+"_DEV_MODE") == "1"
}
