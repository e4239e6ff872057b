package configs

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/deployboard/cli/constants"
	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/errors"
	"github.com/spf13/viper"
)

const (
	keyAPIURL         = "apiUrl"
	keyDashboardURL   = "dashboardUrl"
	keyPollInterval   = "pollInterval"
	keyRequestTimeout = "requestTimeout"
	keyLogFile        = "logFile"
	keyLogLevel       = "logLevel"
)

type Config struct {
	viper      *viper.Viper
	configPath string
}

type Configs struct {
	rootConfigs *Config
	// RootDir holds the config file and the log file by default
	RootDir string
}

func (c *Configs) CreatePathIfNotExist(path string) error {
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}

	return nil
}

func DefaultRootDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return path.Join(home, ".deployboard")
}

// New loads configs from configPath, or from ~/.deployboard/config.json when
// configPath is empty. A missing file yields the defaults.
func New(configPath string) (*Configs, error) {
	rootDir := DefaultRootDir()
	if configPath == "" {
		configPath = path.Join(rootDir, "config.json")
	}

	rootViper := viper.New()
	rootViper.SetConfigFile(configPath)
	rootViper.SetConfigType("json")
	rootViper.SetDefault(keyAPIURL, constants.DefaultAPIURL)
	rootViper.SetDefault(keyDashboardURL, constants.DefaultDashboardURL)
	rootViper.SetDefault(keyPollInterval, constants.DefaultPollInterval.String())
	rootViper.SetDefault(keyRequestTimeout, constants.DefaultRequestTimeout.String())
	rootViper.SetDefault(keyLogFile, path.Join(rootDir, "deployboard.log"))
	rootViper.SetDefault(keyLogLevel, constants.DefaultLogLevel)

	if err := rootViper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.ConfigReadFailed
		}
	}

	return &Configs{
		rootConfigs: &Config{
			viper:      rootViper,
			configPath: configPath,
		},
		RootDir: rootDir,
	}, nil
}

func (c *Configs) ConfigPath() string {
	return c.rootConfigs.configPath
}

// SetAPIURL overrides the configured API URL for this run only
func (c *Configs) SetAPIURL(apiURL string) {
	c.rootConfigs.viper.Set(keyAPIURL, apiURL)
}

// SetPollInterval overrides the configured poll interval for this run only
func (c *Configs) SetPollInterval(interval time.Duration) {
	c.rootConfigs.viper.Set(keyPollInterval, interval.String())
}

// GetRootConfigs resolves and validates the effective configuration
func (c *Configs) GetRootConfigs() (*entity.RootConfig, error) {
	v := c.rootConfigs.viper

	apiURL := strings.TrimRight(strings.TrimSpace(v.GetString(keyAPIURL)), "/")
	if !isHTTPURL(apiURL) {
		return nil, errors.InvalidAPIURL
	}
	dashboardURL := strings.TrimRight(strings.TrimSpace(v.GetString(keyDashboardURL)), "/")
	if !isHTTPURL(dashboardURL) {
		return nil, errors.InvalidAPIURL
	}

	interval := v.GetDuration(keyPollInterval)
	if interval <= 0 {
		return nil, errors.InvalidPollInterval
	}
	timeout := v.GetDuration(keyRequestTimeout)
	if timeout < 0 {
		timeout = 0
	}

	return &entity.RootConfig{
		APIURL:         apiURL,
		DashboardURL:   dashboardURL,
		PollInterval:   interval,
		RequestTimeout: timeout,
		LogFile:        v.GetString(keyLogFile),
		LogLevel:       v.GetString(keyLogLevel),
	}, nil
}

// SetValue validates value for key and writes the resulting config to the file.
// Only values read from the file are persisted, never per-run overrides.
func (c *Configs) SetValue(key string, value string) (*entity.RootConfig, error) {
	cfg, err := c.GetRootConfigs()
	if err != nil {
		return nil, err
	}
	value = strings.TrimSpace(value)

	switch key {
	case keyAPIURL:
		cfg.APIURL = strings.TrimRight(value, "/")
		if !isHTTPURL(cfg.APIURL) {
			return nil, errors.InvalidAPIURL
		}
	case keyDashboardURL:
		cfg.DashboardURL = strings.TrimRight(value, "/")
		if !isHTTPURL(cfg.DashboardURL) {
			return nil, errors.InvalidAPIURL
		}
	case keyPollInterval:
		interval, err := time.ParseDuration(value)
		if err != nil || interval <= 0 {
			return nil, errors.InvalidPollInterval
		}
		cfg.PollInterval = interval
	case keyRequestTimeout:
		timeout, err := time.ParseDuration(value)
		if err != nil || timeout < 0 {
			return nil, errors.InvalidRequestTimeout
		}
		cfg.RequestTimeout = timeout
	case keyLogFile:
		cfg.LogFile = value
	case keyLogLevel:
		cfg.LogLevel = value
	default:
		return nil, errors.UnknownConfigKey
	}

	if err := c.SetRootConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetRootConfig persists cfg to the config file
func (c *Configs) SetRootConfig(cfg *entity.RootConfig) error {
	v := c.rootConfigs.viper
	v.Set(keyAPIURL, cfg.APIURL)
	v.Set(keyDashboardURL, cfg.DashboardURL)
	v.Set(keyPollInterval, cfg.PollInterval.String())
	v.Set(keyRequestTimeout, cfg.RequestTimeout.String())
	v.Set(keyLogFile, cfg.LogFile)
	v.Set(keyLogLevel, cfg.LogLevel)

	err := c.CreatePathIfNotExist(c.rootConfigs.configPath)
	if err != nil {
		return err
	}

	return v.WriteConfigAs(c.rootConfigs.configPath)
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
