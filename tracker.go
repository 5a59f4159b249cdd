package sunshade

import "log/slog"

// Tracker remembers the last selected non-light shape and recomputes its
// shadow on every selection change.
//
// The tracker has two states: no target, and a target reference. Selecting
// nothing or selecting the light leaves the state untouched.
type Tracker struct {
	host    Host
	light   *Light
	emitter Emitter
	opts    []Option
	log     *slog.Logger

	target Shape
}

// NewTracker creates a tracker with no target.
// A nil emitter discards summaries.
func NewTracker(host Host, light *Light, emitter Emitter, opts ...Option) *Tracker {
	return newTracker(host, light, emitter, Logger(), opts)
}

func newTracker(host Host, light *Light, emitter Emitter, log *slog.Logger, opts []Option) *Tracker {
	if emitter == nil {
		emitter = discardEmitter{}
	}
	return &Tracker{
		host:    host,
		light:   light,
		emitter: emitter,
		opts:    opts,
		log:     log,
	}
}

// Target returns the tracked shape, or nil when none is tracked.
func (t *Tracker) Target() Shape {
	return t.target
}

// HasTarget reports whether a shape is being tracked.
func (t *Tracker) HasTarget() bool {
	return t.target != nil
}

// Observe applies a selection to the tracker state. Only the first selected
// shape counts. It reports whether the tracked target changed.
func (t *Tracker) Observe(selection []Shape) bool {
	if len(selection) == 0 {
		return false
	}
	first := selection[0]
	if first == nil || t.light.Is(first) {
		return false
	}
	if sameShape(first, t.target) {
		t.target = first
		return false
	}
	t.target = first
	t.log.Info("target tracked", "id", first.ID())
	return true
}

// Recompute refreshes the tracked target's shadow and returns the summary.
// It reports false, without touching any shape, when there is no target or
// the target has been removed from the document.
func (t *Tracker) Recompute() (Summary, bool) {
	if t.target == nil {
		return Summary{}, false
	}
	if t.target.Removed() {
		t.log.Warn("tracked target removed", "id", t.target.ID())
		return Summary{}, false
	}
	light := t.light.Shape()
	if light.Removed() {
		t.log.Warn("light removed", "id", light.ID())
		return Summary{}, false
	}

	backdrop := FindBackdrop(t.host.Root(), t.target, t.light.Is)
	layers := ApplyShadows(light, t.target, backdrop, t.opts...)
	return Summarize(layers), true
}

// HandleSelectionChange is the host selection-change callback: it observes
// the current selection, then recomputes and emits while a target is tracked.
func (t *Tracker) HandleSelectionChange() {
	t.Observe(t.host.Selection())
	if s, ok := t.Recompute(); ok {
		t.emitter.Emit(s)
	}
}
