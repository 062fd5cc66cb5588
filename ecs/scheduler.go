package ecs

import (
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *systemStatsInternal) record(duration time.Duration) {
	s.executionCount++
	s.lastDuration = duration
	s.totalDuration += duration

	if duration < s.minDuration {
		s.minDuration = duration
	}
	if duration > s.maxDuration {
		s.maxDuration = duration
	}
}

// Scheduler executes systems in registration order against one EntityManager.
// It does not commit the manager; the caller runs EntityManager.Update at the top of
// each frame.
type Scheduler struct {
	entities    *EntityManager
	systems     []System
	systemStats []*systemStatsInternal
}

// NewScheduler creates a new scheduler for the given entity manager.
func NewScheduler(entities *EntityManager) *Scheduler {
	return &Scheduler{
		entities: entities,
		systems:  make([]System, 0),
	}
}

// Register appends a system; systems run in the order they were registered.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes every registered system once for the given frame number.
func (s *Scheduler) Once(frame int64) {
	s.run(newUpdateFrame(frame, s.entities), nil)
}

// OnceFiltered executes the registered systems for which keep returns true,
// preserving registration order.
func (s *Scheduler) OnceFiltered(frame int64, keep func(System) bool) {
	s.run(newUpdateFrame(frame, s.entities), keep)
}

func (s *Scheduler) run(frame *UpdateFrame, keep func(System) bool) {
	for i, system := range s.systems {
		if keep != nil && !keep(system) {
			continue
		}

		start := time.Now()
		system.Execute(frame)
		s.systemStats[i].record(time.Since(start))
	}
}

// Systems returns the registered systems in execution order.
func (s *Scheduler) Systems() []System {
	return s.systems
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
