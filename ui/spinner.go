package ui

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

type SpinnerTokens []string

var (
	RocketTokens SpinnerTokens = []string{"🚀", "🚀·", "🚀··", "🚀···", "🚀····", "🚀·····"}
	DotTokens    SpinnerTokens = spinner.CharSets[14]
)

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
	Writer   io.Writer
}

var (
	mu sync.Mutex
	s  *spinner.Spinner
)

// StartSpinner starts the shared spinner. Starting while one is active is a no-op.
func StartSpinner(cfg *SpinnerCfg) {
	mu.Lock()
	defer mu.Unlock()
	if s != nil && s.Active() {
		return
	}
	if cfg.Tokens == nil {
		cfg.Tokens = DotTokens
	}
	if cfg.Duration.Microseconds() == 0 {
		cfg.Duration = time.Duration(100) * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = os.Stdout
	if cfg.Writer != nil {
		s.Writer = cfg.Writer
	}

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	s.Start()
}

func StopSpinner(msg string) {
	mu.Lock()
	defer mu.Unlock()
	if s == nil {
		return
	}
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	s.Stop()
	s = nil
}
