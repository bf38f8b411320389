// Package game drives the simulation one round at a time
package game

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/nightcaste/internal/errors"
	"github.com/KirkDiggler/nightcaste/internal/events"
)

// EngineConfig holds the collaborators of an Engine
type EngineConfig struct {
	Bus     events.Bus
	Updater Updater

	// BeforeRound is called on the engine goroutine before each round,
	// the place to feed input gathered elsewhere into the simulation
	BeforeRound func(round int64)

	// AfterRound is called once a round has finished, successfully or not
	AfterRound func(round int64)
}

// Engine owns the round counter. Each round delivers the queued events and
// then runs every behaviour; events published by behaviours are delivered
// in the following round.
type Engine struct {
	bus         events.Bus
	updater     Updater
	beforeRound func(round int64)
	afterRound  func(round int64)
	round       int64
}

// NewEngine creates an engine starting at round 0
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil || cfg.Bus == nil || cfg.Updater == nil {
		panic("EngineConfig with Bus and Updater is required")
	}

	return &Engine{
		bus:         cfg.Bus,
		updater:     cfg.Updater,
		beforeRound: cfg.BeforeRound,
		afterRound:  cfg.AfterRound,
	}
}

// Round returns the number of the next round to run
func (e *Engine) Round() int64 {
	return e.round
}

// RunRound processes the queue, then updates behaviours, then advances the round.
// A handler fault skips the behaviour pass; the round still advances.
func (e *Engine) RunRound(ctx context.Context, deltaTime float64) (int, error) {
	round := e.round
	if e.beforeRound != nil {
		e.beforeRound(round)
	}
	defer func() {
		e.round++
		if e.afterRound != nil {
			e.afterRound(round)
		}
	}()

	processed, err := e.bus.ProcessRound(round)
	if err != nil {
		return processed, err
	}

	if err := e.updater.UpdateAll(ctx, round, deltaTime); err != nil {
		return processed, errors.Wrapf(err, "updating behaviours in round %d", round)
	}
	return processed, nil
}

// Run calls RunRound on every tick until ctx is done.
// Handler faults are logged and the loop continues; any other error stops it.
func (e *Engine) Run(ctx context.Context, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Printf("Engine: Stopping after round %d", e.round)
			return nil
		case now := <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			dt := now.Sub(last).Seconds()
			last = now

			if _, err := e.RunRound(ctx, dt); err != nil {
				if ctx.Err() != nil {
					continue
				}
				if errors.IsHandlerFault(err) {
					log.Printf("Engine: Round %d handler fault: %v", e.round-1, err)
					continue
				}
				return err
			}
		}
	}
}
