// Package game implements the frame loop of the arcade: the engine state machine and
// the spawner, movement, collision, input and render systems that run each tick.
package game

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/plus3/shapewars/config"
	"github.com/plus3/shapewars/ecs"
	"github.com/plus3/shapewars/vec"
)

const (
	TagPlayer = "player"
	TagEnemy  = "enemy"
)

// ErrNoPlayer is raised when a player-only system runs before the player exists.
var ErrNoPlayer = errors.New("game: player entity does not exist")

// State is the engine's position in the frame-loop state machine.
type State int

const (
	Running State = iota
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for state transitions and spawns.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine owns the entity manager, the configuration and all frame-loop state.
type Engine struct {
	cfg       *config.Config
	surface   Surface
	rng       Random
	logger    *slog.Logger
	entities  *ecs.EntityManager
	scheduler *ecs.Scheduler

	state               State
	frame               int64
	lastEnemySpawnFrame int64
	player              *ecs.Entity
}

// New builds an engine, spawns the player at the center of the surface and enters
// the Running state.
func New(cfg *config.Config, surface Surface, rng Random, opts ...Option) *Engine {
	if cfg == nil || surface == nil || rng == nil {
		panic("game: config, surface and random source are required")
	}

	entities := ecs.NewEntityManager()
	e := &Engine{
		cfg:                 cfg,
		surface:             surface,
		rng:                 rng,
		logger:              slog.Default(),
		entities:            entities,
		scheduler:           ecs.NewScheduler(entities),
		lastEnemySpawnFrame: -int64(cfg.Enemy.SpawnInterval),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.scheduler.Register(&SpawnerSystem{engine: e})
	e.scheduler.Register(&MovementSystem{engine: e})
	e.scheduler.Register(&CollisionSystem{engine: e})
	e.scheduler.Register(&InputSystem{engine: e})
	e.scheduler.Register(&RenderSystem{engine: e})

	e.spawnPlayer()
	e.state = Running
	return e
}

// pauseAware is implemented by systems that keep running while the engine is paused.
type pauseAware interface {
	runsWhilePaused() bool
}

func runsWhilePaused(s ecs.System) bool {
	p, ok := s.(pauseAware)
	return ok && p.runsWhilePaused()
}

// Tick advances the game by one frame. Pending spawns and removals are committed
// first, whatever the state; a stopped engine does nothing.
func (e *Engine) Tick() {
	if e.state == Stopped {
		return
	}

	e.entities.Update()

	switch e.state {
	case Running:
		e.scheduler.Once(e.frame)
	case Paused:
		e.scheduler.OnceFiltered(e.frame, runsWhilePaused)
	}

	e.frame++
}

// Run ticks the engine every interval until it stops or ctx is cancelled.
func (e *Engine) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for e.state != Stopped {
		select {
		case <-ctx.Done():
			e.Stop()
			return ctx.Err()
		case <-ticker.C:
			e.Tick()
		}
	}
	return nil
}

// TogglePause switches between Running and Paused. It has no effect once stopped.
func (e *Engine) TogglePause() {
	switch e.state {
	case Running:
		e.setState(Paused)
	case Paused:
		e.setState(Running)
	}
}

// Stop moves the engine to its terminal state.
func (e *Engine) Stop() {
	e.setState(Stopped)
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	e.logger.Info("engine state changed", "from", e.state, "to", s, "frame", e.frame)
	e.state = s
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Frame returns the number of frames ticked so far.
func (e *Engine) Frame() int64 {
	return e.frame
}

// Player returns the player entity.
func (e *Engine) Player() *ecs.Entity {
	return e.player
}

// Entities returns the entity manager.
func (e *Engine) Entities() *ecs.EntityManager {
	return e.entities
}

// Stats returns per-system execution statistics.
func (e *Engine) Stats() *ecs.SchedulerStats {
	return e.scheduler.GetStats()
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

func (e *Engine) mustPlayer() *ecs.Entity {
	if e.player == nil {
		panic(ErrNoPlayer)
	}
	return e.player
}

func (e *Engine) bounds() (float64, float64) {
	w, h := e.surface.Size()
	return float64(w), float64(h)
}

func (e *Engine) spawnPlayer() {
	p := e.cfg.Player
	w, h := e.bounds()

	player := e.entities.AddEntity(TagPlayer)
	player.Transform = &ecs.Transform{
		Position: vec.New(w/2, h/2),
		Angle:    initialAngle(p.Vertices),
	}
	player.Shape = &ecs.Shape{
		Radius:           p.ShapeRadius,
		Vertices:         p.Vertices,
		Fill:             p.Fill,
		Outline:          p.Outline,
		OutlineThickness: p.OutlineThickness,
	}
	player.Collision = &ecs.Collision{Radius: p.CollisionRadius}
	player.Input = &ecs.Input{}
	player.Score = &ecs.Score{}

	e.player = player
	e.logger.Debug("player spawned", "id", player.Id(), "x", w/2, "y", h/2)
}

// initialAngle gives shapes a starting orientation that depends on their vertex count.
func initialAngle(vertices int) float64 {
	return float64((vertices * 40) % 360)
}
