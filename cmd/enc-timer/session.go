package main

import (
	"fmt"
	"time"

	"github.com/lixenwraith/enc-timer/config"
	"github.com/lixenwraith/enc-timer/duration"
)

// Session is what the timer is started with
type Session struct {
	Duration time.Duration
	Items    int
	Decimal  bool
	Autoplay bool

	fixedItems bool // items came from config or flags and survive mode switches
}

// resolveSession parses the duration argument, or the configured default, in the configured mode
func resolveSession(cfg config.Config, args []string) (Session, error) {
	input := cfg.Timer.Duration
	if len(args) > 0 {
		input = args[0]
	}

	d, err := duration.Parse(input, cfg.Timer.Decimal)
	if err != nil {
		return Session{}, fmt.Errorf("duration: %w", err)
	}

	s := Session{
		Duration:   d,
		Items:      cfg.Timer.Items,
		Decimal:    cfg.Timer.Decimal,
		Autoplay:   cfg.Timer.Autoplay,
		fixedItems: cfg.Timer.Items > 0,
	}
	if !s.fixedItems {
		s.Items = duration.Items(d, s.Decimal)
	}
	return s, nil
}

// switchMode flips the readout and recomputes the default marker count
func (s Session) switchMode() Session {
	s.Decimal = !s.Decimal
	if !s.fixedItems {
		s.Items = duration.Items(s.Duration, s.Decimal)
	}
	return s
}
