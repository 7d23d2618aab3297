package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-reversi/board"
	"github.com/lixenwraith/vi-reversi/input"
)

// Source yields one intent per call, blocking until input arrives
// An error ends the loop; it is the terminal layer's fault, never the game's
type Source interface {
	Next() (input.Intent, error)
}

// View presents the current state
type View interface {
	Draw(s *State) error
}

// Feedback reacts to placements, e.g. with sound
type Feedback interface {
	Placed(c board.Cell, flipped int)
	Rejected()
}

// Option configures Run
type Option func(*loopConfig)

type loopConfig struct {
	log      zerolog.Logger
	feedback Feedback
	state    *State
}

// WithLogger sets the loop logger, disabled by default
func WithLogger(l zerolog.Logger) Option {
	return func(c *loopConfig) { c.log = l }
}

// WithFeedback registers a placement feedback sink
func WithFeedback(f Feedback) Option {
	return func(c *loopConfig) { c.feedback = f }
}

// WithState starts the loop from an existing state instead of the opening
func WithState(s *State) Option {
	return func(c *loopConfig) { c.state = s }
}

// Run draws, reads one intent, applies it, and repeats until a quit intent
// Strictly sequential: each intent is fully applied and drawn before the next read.
// Returns nil on quit, or the first source/view error wrapped with context.
func Run(src Source, view View, opts ...Option) error {
	cfg := loopConfig{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := cfg.state
	if s == nil {
		s = New()
	}

	for s.Phase == Running {
		if err := view.Draw(s); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		intent, err := src.Next()
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		mover := s.Turn.Color()
		out := s.Handle(intent)
		cfg.log.Debug().
			Stringer("intent", intent).
			Int("row", s.Cursor.Row).
			Int("col", s.Cursor.Col).
			Msg("intent handled")

		if out.Placement != nil {
			cfg.report(mover, s.Cursor, *out.Placement)
		}
	}

	cfg.log.Info().Msg("game loop terminated")
	return nil
}

func (c *loopConfig) report(mover board.Cell, at board.Pos, res board.Result) {
	if !res.Accepted {
		c.log.Debug().
			Stringer("color", mover).
			Int("row", at.Row).
			Int("col", at.Col).
			Stringer("reason", res.Reason).
			Msg("placement rejected")
		if c.feedback != nil {
			c.feedback.Rejected()
		}
		return
	}

	c.log.Debug().
		Stringer("color", mover).
		Int("row", at.Row).
		Int("col", at.Col).
		Int("flipped", len(res.Flipped)).
		Msg("stone placed")
	if c.feedback != nil {
		c.feedback.Placed(mover, len(res.Flipped))
	}
}
