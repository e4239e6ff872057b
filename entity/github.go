package entity

const (
	GITHUB_EVENT_DEPLOYMENT        = "deployment"
	GITHUB_EVENT_DEPLOYMENT_STATUS = "deployment_status"
)

type RelayRequest struct {
	Event   string
	Payload []byte
}

// RelayResult describes what a relayed webhook did to the deployment list
type RelayResult struct {
	Action     Action
	Deployment *Deployment
	Skipped    bool
	Reason     string
}
