// Package store holds the process-wide list of deployments together with the
// lifecycle of the request that last refreshed it.
//
// Actions run their request on a goroutine and report through a channel that
// delivers exactly one entity.Outcome. State transitions happen under a single
// mutex, and every transition is broadcast to subscribers as a snapshot.
package store

import (
	"context"
	"sync"

	"github.com/deployboard/cli/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Gateway is the part of the API client the store drives
type Gateway interface {
	GetDeployments(ctx context.Context) ([]*entity.Deployment, error)
	CreateDeployment(ctx context.Context, req *entity.CreateDeploymentRequest) (*entity.Deployment, error)
	UpdateDeployment(ctx context.Context, req *entity.UpdateDeploymentRequest) (*entity.Deployment, error)
}

type Store struct {
	gtwy   Gateway
	logger *zap.Logger

	mu      sync.RWMutex
	state   entity.DeploymentsState
	subs    map[int]chan entity.DeploymentsState
	nextSub int

	inflight sync.WaitGroup
}

func New(gtwy Gateway, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		gtwy:   gtwy,
		logger: logger.Named("store"),
		state:  initialState(),
		subs:   make(map[int]chan entity.DeploymentsState),
	}
}

func initialState() entity.DeploymentsState {
	return entity.DeploymentsState{
		Items:   []*entity.Deployment{},
		Status:  entity.REQUEST_IDLE,
		Session: uuid.New().String(),
	}
}

// State returns a snapshot that later mutations do not affect
func (s *Store) State() entity.DeploymentsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Copy()
}

// Find returns a copy of the deployment with the given id
func (s *Store) Find(id string) (*entity.Deployment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.state.Items, id); i != -1 {
		return s.state.Items[i].Copy(), true
	}
	return nil, false
}

// Subscribe returns a channel that receives the current state right away and
// then every later state. Slow readers only ever see the newest snapshot.
func (s *Store) Subscribe() (<-chan entity.DeploymentsState, func()) {
	ch := make(chan entity.DeploymentsState, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.state.Copy()
	s.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			close(ch)
			s.mu.Unlock()
		})
	}
	return ch, unsubscribe
}

// Reset ends the current session. State goes back to empty/idle and requests
// still in flight settle as stale without touching the new session.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.state.Session
	s.state = initialState()
	s.logger.Info("session reset", zap.String("previous", old), zap.String("session", s.state.Session))
	s.broadcast()
}

// Wait blocks until every request issued so far has settled
func (s *Store) Wait() {
	s.inflight.Wait()
}

// FetchAll replaces the list with the server's. Status is loading as soon as
// FetchAll returns, and overlapping calls are not coalesced.
func (s *Store) FetchAll(ctx context.Context) <-chan entity.Outcome {
	session := s.begin(func(st *entity.DeploymentsState) {
		st.Status = entity.REQUEST_LOADING
	})

	return s.dispatch(entity.ACTION_FETCH_ALL, session, func() entity.Outcome {
		items, err := s.gtwy.GetDeployments(ctx)
		if err != nil {
			outcome := entity.Outcome{Action: entity.ACTION_FETCH_ALL, Err: err}
			outcome.Stale = !s.settle(session, func(st *entity.DeploymentsState) {
				st.Status = entity.REQUEST_FAILED
				st.Error = err.Error()
			})
			return outcome
		}

		outcome := entity.Outcome{Action: entity.ACTION_FETCH_ALL, Deployments: copyItems(items)}
		outcome.Stale = !s.settle(session, func(st *entity.DeploymentsState) {
			st.Items = copyItems(items)
			st.Status = entity.REQUEST_SUCCEEDED
			st.Error = ""
		})
		return outcome
	})
}

// Create submits a new deployment and appends what the server returns.
// Status and error are left alone.
func (s *Store) Create(ctx context.Context, req *entity.CreateDeploymentRequest) <-chan entity.Outcome {
	session := s.session()

	return s.dispatch(entity.ACTION_CREATE, session, func() entity.Outcome {
		created, err := s.gtwy.CreateDeployment(ctx, req)
		if err != nil {
			return entity.Outcome{Action: entity.ACTION_CREATE, Err: err, Stale: !s.isCurrent(session)}
		}

		outcome := entity.Outcome{Action: entity.ACTION_CREATE, Deployment: created.Copy()}
		outcome.Stale = !s.settle(session, func(st *entity.DeploymentsState) {
			// a poll may already have picked the record up
			if i := indexOf(st.Items, created.ID); created.ID != "" && i != -1 {
				st.Items[i] = created.Copy()
				return
			}
			st.Items = append(st.Items, created.Copy())
		})
		return outcome
	})
}

// Update submits patch for id and swaps in the returned record. An id that is
// not in the list is dropped without error.
func (s *Store) Update(ctx context.Context, id string, patch *entity.DeploymentPatch) <-chan entity.Outcome {
	session := s.session()

	return s.dispatch(entity.ACTION_UPDATE, session, func() entity.Outcome {
		updated, err := s.gtwy.UpdateDeployment(ctx, &entity.UpdateDeploymentRequest{ID: id, Patch: patch})
		if err != nil {
			return entity.Outcome{Action: entity.ACTION_UPDATE, Err: err, Stale: !s.isCurrent(session)}
		}

		target := updated.ID
		if target == "" {
			target = id
		}
		outcome := entity.Outcome{Action: entity.ACTION_UPDATE, Deployment: updated.Copy()}
		outcome.Stale = !s.settle(session, func(st *entity.DeploymentsState) {
			i := indexOf(st.Items, target)
			if i == -1 {
				s.logger.Debug("update dropped, deployment not in list", zap.String("id", target))
				return
			}
			st.Items[i] = updated.Copy()
		})
		return outcome
	})
}

func (s *Store) dispatch(action entity.Action, session string, run func() entity.Outcome) <-chan entity.Outcome {
	out := make(chan entity.Outcome, 1)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer close(out)

		outcome := run()
		fields := []zap.Field{
			zap.String("action", string(action)),
			zap.String("session", session),
			zap.Bool("stale", outcome.Stale),
		}
		if outcome.Err != nil {
			s.logger.Warn("action rejected", append(fields, zap.Error(outcome.Err))...)
		} else {
			s.logger.Debug("action fulfilled", fields...)
		}
		out <- outcome
	}()
	return out
}

func (s *Store) session() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Session
}

func (s *Store) isCurrent(session string) bool {
	return s.session() == session
}

// begin applies a pending transition and returns the session it belongs to
func (s *Store) begin(fn func(*entity.DeploymentsState)) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	s.broadcast()
	return s.state.Session
}

// settle applies fn only if session is still the live one
func (s *Store) settle(session string, fn func(*entity.DeploymentsState)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Session != session {
		return false
	}
	fn(&s.state)
	s.broadcast()
	return true
}

// broadcast must be called with mu held
func (s *Store) broadcast() {
	for _, ch := range s.subs {
		snapshot := s.state.Copy()
		select {
		case ch <- snapshot:
		default:
			// replace the unread snapshot with the newer one
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}

func indexOf(items []*entity.Deployment, id string) int {
	for i, d := range items {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func copyItems(items []*entity.Deployment) []*entity.Deployment {
	cp := make([]*entity.Deployment, 0, len(items))
	for _, d := range items {
		if d == nil {
			continue
		}
		cp = append(cp, d.Copy())
	}
	return cp
}
