package entity

type RequestStatus string

const (
	REQUEST_IDLE      RequestStatus = "idle"
	REQUEST_LOADING   RequestStatus = "loading"
	REQUEST_SUCCEEDED RequestStatus = "succeeded"
	REQUEST_FAILED    RequestStatus = "failed"
)

// DeploymentsState is a snapshot of the deployment store
type DeploymentsState struct {
	Items   []*Deployment
	Status  RequestStatus
	Error   string
	Session string
}

// Copy deep copies the snapshot so callers can hold it past further mutations
func (s DeploymentsState) Copy() DeploymentsState {
	cp := s
	if s.Items != nil {
		cp.Items = make([]*Deployment, len(s.Items))
		for i, d := range s.Items {
			cp.Items[i] = d.Copy()
		}
	}
	return cp
}

type Action string

const (
	ACTION_FETCH_ALL Action = "fetchAll"
	ACTION_CREATE    Action = "create"
	ACTION_UPDATE    Action = "update"
)

// Outcome reports how a store action settled. Exactly one of Deployments,
// Deployment or Err is meaningful, depending on Action and success.
type Outcome struct {
	Action      Action
	Deployments []*Deployment
	Deployment  *Deployment
	Err         error
	// Stale is set when the session the request was issued under has ended,
	// in which case the result was not applied.
	Stale bool
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}
