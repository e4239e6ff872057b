package constants

// OpenURLMap lists the pages `deployboard open` knows about. %s is the dashboard base URL.
var OpenURLMap = map[string]string{
	"dashboard":   "%s",
	"deployments": "%s/deployments",
	"github":      "https://github.com/deployboard/cli",
	"releases":    "https://github.com/deployboard/cli/releases",
}
