// Package timeline sequences timed property transitions against a shared
// clock. A Timeline is an ordered list of wait/transition steps bound to one
// Target; evaluation is a pure function of (now, timeline), so sampling at
// any cadence - regular, irregular, or sparse - produces the same values at
// the same instants.
package timeline

import (
	"errors"
	"fmt"
	"math"
)

// Hold marks a component of a transition value vector as unanimated for
// that step: the field keeps whatever value it had when the step began.
var Hold = math.NaN()

// ErrInvalidDuration is returned by Build when any step duration is negative.
var ErrInvalidDuration = errors.New("timeline: step duration must be >= 0")

type stepKind int

const (
	stepWait stepKind = iota
	stepTo
)

// step is the tagged union of the two phase kinds. to and ease are only
// meaningful for stepTo.
type step struct {
	kind     stepKind
	duration float64 // milliseconds
	to       []float64
	ease     EaseFunc
}

// Builder accumulates steps for one Target. Chain Wait/To calls and finish
// with Build; the builder itself never samples the clock or touches the
// target's fields.
type Builder struct {
	target Target
	steps  []step
	err    error
}

// New starts a timeline for target with an empty step list.
func New(target Target) *Builder {
	return &Builder{target: target}
}

// Wait appends a hold phase of ms milliseconds.
func (b *Builder) Wait(ms float64) *Builder {
	if b.err == nil && ms < 0 {
		b.err = fmt.Errorf("%w: wait %v", ErrInvalidDuration, ms)
	}
	b.steps = append(b.steps, step{kind: stepWait, duration: ms})
	return b
}

// To appends a transition toward vals over ms milliseconds. vals must have
// one entry per target field; Hold entries leave that field unanimated for
// the step. A nil ease means linear. Zero ms snaps to vals the instant the
// step is reached.
func (b *Builder) To(vals []float64, ms float64, ease EaseFunc) *Builder {
	if b.err == nil && ms < 0 {
		b.err = fmt.Errorf("%w: transition %v", ErrInvalidDuration, ms)
	}
	if ease == nil {
		ease = Linear
	}
	to := append([]float64(nil), vals...)
	b.steps = append(b.steps, step{kind: stepTo, duration: ms, to: to, ease: ease})
	return b
}

// Build validates the accumulated steps and returns an inert Timeline.
// Field-count mismatches and negative durations are construction errors,
// not runtime conditions.
func (b *Builder) Build() (*Timeline, error) {
	if b.err != nil {
		return nil, b.err
	}
	fields := len(b.target.Get())
	for _, s := range b.steps {
		if s.kind == stepTo && len(s.to) != fields {
			return nil, fmt.Errorf("timeline: transition has %d values, target has %d fields", len(s.to), fields)
		}
	}
	return &Timeline{target: b.target, steps: b.steps}, nil
}

// Timeline is an armed or inert step sequence. It holds no clock of its own;
// the owner passes the shared clock sample into every Evaluate call.
type Timeline struct {
	target Target
	steps  []step

	armed     bool
	startTime float64
	total     float64
	starts    [][]float64 // per-step field values at step start
	final     []float64
	done      bool
}

// Arm snapshots the target's current values as the pre-animation state and
// fixes startTime. Step-start values are resolved here once - the initial
// snapshot folded through each prior transition's terminals - so Evaluate
// never depends on earlier samples having landed inside earlier steps.
func (t *Timeline) Arm(now float64) {
	cur := append([]float64(nil), t.target.Get()...)
	t.starts = make([][]float64, len(t.steps))
	t.total = 0
	for i, s := range t.steps {
		t.starts[i] = append([]float64(nil), cur...)
		t.total += s.duration
		if s.kind == stepTo {
			for j, v := range s.to {
				if !math.IsNaN(v) {
					cur[j] = v
				}
			}
		}
	}
	t.final = cur
	t.startTime = now
	t.armed = true
	t.done = false
}

// Done reports whether the timeline has passed its terminal time.
func (t *Timeline) Done() bool {
	return t.done
}

// Duration returns the sum of all step durations in milliseconds.
// Zero until armed.
func (t *Timeline) Duration() float64 {
	return t.total
}

// Evaluate writes the target's value for clock sample now. Unarmed and
// terminal timelines are no-ops. now earlier than the arm time clamps to
// elapsed zero rather than producing negative progress.
func (t *Timeline) Evaluate(now float64) {
	if !t.armed || t.done {
		return
	}

	elapsed := now - t.startTime
	if elapsed < 0 {
		elapsed = 0
	}

	acc := 0.0
	for i, s := range t.steps {
		if elapsed < acc+s.duration {
			local := elapsed - acc
			t.apply(i, local/s.duration)
			return
		}
		acc += s.duration
	}

	// Past the last step: pin the terminal values once and go inert.
	t.target.Set(append([]float64(nil), t.final...))
	t.done = true
}

// apply writes the value for step i at local progress p in [0,1).
func (t *Timeline) apply(i int, p float64) {
	s := t.steps[i]
	start := t.starts[i]

	if s.kind == stepWait {
		// A wait holds its step-start values. Writing them keeps the target
		// correct even when no sample ever landed inside a preceding
		// transition.
		t.target.Set(append([]float64(nil), start...))
		return
	}

	shaped := s.ease(p)
	out := make([]float64, len(start))
	for j := range start {
		if math.IsNaN(s.to[j]) {
			out[j] = start[j]
		} else {
			out[j] = start[j] + (s.to[j]-start[j])*shaped
		}
	}
	t.target.Set(out)
}
