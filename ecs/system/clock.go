package system

import (
	"math"

	"github.com/milk9111/railshooter/ecs"
	"github.com/milk9111/railshooter/ecs/component"
)

// DefaultStep is the tick length used when no step function is given.
const DefaultStep = 1.0 / 60

// ClockSystem advances the Clock singleton by step() seconds each tick.
type ClockSystem struct {
	step func() float64
}

func NewClockSystem(step func() float64) *ClockSystem {
	return &ClockSystem{step: step}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := DefaultStep
	if s.step != nil {
		dt = s.step()
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		dt = 0
	}

	clock := ensureClock(w)
	if clock == nil {
		return
	}
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Ticks++
}

func ensureClock(w *ecs.World) *component.Clock {
	if e, ok := w.First(component.ClockComponent.Kind()); ok {
		clock, _ := ecs.Get(w, e, component.ClockComponent.Kind())
		return clock
	}

	e := ecs.CreateEntity(w)
	clock := &component.Clock{}
	if err := ecs.Add(w, e, component.ClockComponent.Kind(), clock); err != nil {
		return nil
	}
	_ = ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{ID: "clock"})
	return clock
}

// deltaSeconds is the current tick length, zero before the first clock tick.
func deltaSeconds(w *ecs.World) float64 {
	e, ok := w.First(component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	clock, ok := ecs.Get(w, e, component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.Delta
}
