package poller

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Ticker is the subset of time.Ticker the poller needs
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t *timeTicker) Chan() <-chan time.Time { return t.t.C }
func (t *timeTicker) Stop()                  { t.t.Stop() }

func NewTimeTicker(d time.Duration) Ticker {
	return &timeTicker{t: time.NewTicker(d)}
}

type Option func(*Poller)

func WithTicker(fn TickerFunc) Option {
	return func(p *Poller) {
		if fn != nil {
			p.newTicker = fn
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Poller) {
		if l != nil {
			p.logger = l
		}
	}
}

// Poller calls fetch once when started and again on every tick until stopped.
// It never waits on fetch results, so a slow request can overlap the next tick.
type Poller struct {
	interval  time.Duration
	fetch     func()
	newTicker TickerFunc
	logger    *zap.Logger

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func New(interval time.Duration, fetch func(), opts ...Option) *Poller {
	p := &Poller{
		interval:  interval,
		fetch:     fetch,
		newTicker: NewTimeTicker,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.Named("poller")
	return p
}

func (p *Poller) Polling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

// Start fetches immediately and begins ticking. It returns false when the
// poller is already running.
func (p *Poller) Start() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		return false
	}

	ticker := p.newTicker(p.interval)
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	p.logger.Info("polling started", zap.Duration("interval", p.interval))

	p.fetch()
	go p.loop(ticker, p.stop, p.done)
	return true
}

// Stop cancels the timer and returns once no further fetch can happen.
// Requests already in flight are left to finish.
func (p *Poller) Stop() {
	p.mu.Lock()
	stop, done := p.stop, p.done
	p.stop, p.done = nil, nil
	p.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
	p.logger.Info("polling stopped")
}

func (p *Poller) loop(ticker Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			select {
			case <-stop:
				return
			default:
			}
			p.logger.Debug("tick")
			p.fetch()
		}
	}
}
