package constants

import "time"

// Version is overwritten at build time through -ldflags
var Version = "source"

const (
	GitHubOwner = "deployboard"
	GitHubRepo  = "cli"
)

const (
	DefaultAPIURL         = "http://localhost:8080/api"
	DefaultDashboardURL   = "http://localhost:3000"
	DefaultPollInterval   = 30 * time.Second
	DefaultRequestTimeout = time.Duration(0)
	DefaultLogLevel       = "info"

	SourceHeader = "deployboard-cli"
)
