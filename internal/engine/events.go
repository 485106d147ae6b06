package engine

import "github.com/neonrift/neonrift/internal/rng"

// EventKind identifies one rift event from the fixed catalogue.
type EventKind string

const (
	EventNone           EventKind = ""
	EventDoubleXp       EventKind = "double_xp"
	EventSlowMotion     EventKind = "slow_motion"
	EventTimeDistortion EventKind = "time_distortion"
	EventInverted       EventKind = "inverted"
	EventGlitchStorm    EventKind = "glitch_storm"
)

type eventSpec struct {
	kind  EventKind
	label string
}

// eventCatalogue is the fixed set of rift events, picked uniformly.
var eventCatalogue = []eventSpec{
	{EventDoubleXp, "Double XP"},
	{EventSlowMotion, "Slow Motion"},
	{EventTimeDistortion, "Time Distortion"},
	{EventInverted, "Inverted Colors"},
	{EventGlitchStorm, "Glitch Storm"},
}

// maybeTriggerEvent rolls the per-tick activation chance. A roll while an
// event is already active is a no-op; only one event runs at a time.
// Returns the label of the started event, or "".
func (e *Engine) maybeTriggerEvent() string {
	r := e.run
	if r.ActiveEvent != EventNone {
		return ""
	}
	if e.rng.Float64() >= e.cfg.Events.ActivationChance {
		return ""
	}

	spec := rng.Pick(e.rng, eventCatalogue)
	r.ActiveEvent = spec.kind
	r.ActiveEventLabel = spec.label
	r.EventsTriggered++

	switch spec.kind {
	case EventSlowMotion:
		r.SpeedModifier = e.cfg.Events.SlowFactor
	case EventTimeDistortion:
		r.SpeedModifier = e.cfg.Events.DistortFactor
	case EventDoubleXp:
		r.DoubleXpEvent = true
	case EventGlitchStorm:
		r.GlitchBoost = e.cfg.Events.GlitchStormBoost
	case EventInverted:
		r.Inverted = true
	}

	e.sched.after(r.Tick, e.secondsToTicks(e.cfg.Events.DurationSeconds), e.deactivateEvent)
	return spec.label
}

// deactivateEvent reverts every event side effect to its neutral default
// and re-arms eligibility for the next roll. Safe to call when no event
// is active; also invoked on run teardown so no event outlives its run.
func (e *Engine) deactivateEvent() {
	r := e.run
	if r == nil || r.ActiveEvent == EventNone {
		return
	}
	r.ActiveEvent = EventNone
	r.ActiveEventLabel = ""
	r.SpeedModifier = 1
	r.DoubleXpEvent = false
	r.GlitchBoost = 0
	r.Inverted = false
}
