package entity

import "time"

type RootConfig struct {
	APIURL         string        `json:"apiUrl,omitempty" mapstructure:"apiUrl"`
	DashboardURL   string        `json:"dashboardUrl,omitempty" mapstructure:"dashboardUrl"`
	PollInterval   time.Duration `json:"pollInterval,omitempty" mapstructure:"pollInterval"`
	RequestTimeout time.Duration `json:"requestTimeout,omitempty" mapstructure:"requestTimeout"`
	LogFile        string        `json:"logFile,omitempty" mapstructure:"logFile"`
	LogLevel       string        `json:"logLevel,omitempty" mapstructure:"logLevel"`
}
