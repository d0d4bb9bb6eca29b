package scenario

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/yaoapp/emitter/event"
	"github.com/yaoapp/emitter/event/types"
	"github.com/yaoapp/emitter/logger"
)

// Actor is the subscription context a scenario uses for a context name.
// Each name maps to one Actor, so unsubscribing matches by name.
type Actor struct {
	Name string
}

// Call is one handler invocation recorded while running a scenario.
type Call struct {
	Step    int    // 1-based index of the emit step
	Label   string // Subscription label
	Context string // Actor name
	Origin  string // Name that was emitted
	Event   string // Level the subscription was registered on
}

func (c Call) String() string {
	if c.Origin == c.Event {
		return fmt.Sprintf("#%d %s -> %s [%s]", c.Step, c.Origin, c.Label, c.Context)
	}
	return fmt.Sprintf("#%d %s -> %s [%s] via %s", c.Step, c.Origin, c.Label, c.Context, c.Event)
}

// Report is the outcome of a run.
type Report struct {
	Name  string
	Calls []Call
}

// Count returns how many times the handler with the given label ran.
func (r *Report) Count(label string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Label == label {
			n++
		}
	}
	return n
}

// Labels returns the labels that ran, in order of first call.
func (r *Report) Labels() []string {
	seen := map[string]bool{}
	var labels []string
	for _, c := range r.Calls {
		if !seen[c.Label] {
			seen[c.Label] = true
			labels = append(labels, c.Label)
		}
	}
	return labels
}

// runner drives one Emitter through a scenario.
type runner struct {
	em      *event.Emitter
	actors  map[string]*Actor
	report  *Report
	step    int
	current types.Delivery
	log     *logger.Logger
}

// Run plays s against a fresh Emitter built with opts.
// The returned error combines subscription errors and, with event.Recover,
// recovered handler panics; the report is complete either way.
func Run(s *Scenario, opts ...types.Option) (*Report, error) {
	r := &runner{
		actors: map[string]*Actor{},
		report: &Report{Name: s.Name},
		log:    logger.New("scenario"),
	}
	opts = append(opts, event.Observe(types.ObserverFunc(func(d types.Delivery) {
		r.current = d
	})))
	r.em = event.New(opts...)

	r.log.Debug("run %q: %d steps", s.Name, len(s.Steps))

	var errs *multierror.Error
	for i := range s.Steps {
		r.step = i + 1
		if err := r.apply(&s.Steps[i]); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("step %d: %w", r.step, err))
		}
	}
	if err := r.em.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return r.report, errs.ErrorOrNil()
}

func (r *runner) actor(name string) *Actor {
	a, ok := r.actors[name]
	if !ok {
		a = &Actor{Name: name}
		r.actors[name] = a
	}
	return a
}

func (r *runner) apply(st *Step) error {
	switch st.Action() {
	case ActionEmit:
		n, err := st.RepeatInt()
		if err != nil {
			return err
		}
		var errs *multierror.Error
		for i := 0; i < n; i++ {
			if err := r.em.Dispatch(st.Emit); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
		return errs.ErrorOrNil()

	case ActionOff:
		r.em.Off(st.Off.Event, r.actor(st.Off.Context))
		return nil

	case ActionOn:
		r.em.On(st.On.Event, r.actor(st.On.Context), r.handler(st.On))
		return nil

	case ActionSeveral:
		times, err := st.Several.TimesInt()
		if err != nil {
			return err
		}
		r.em.Several(st.Several.Event, r.actor(st.Several.Context), r.handler(st.Several), times)
		return nil

	case ActionThrough:
		freq, err := st.Through.FrequencyInt()
		if err != nil {
			return err
		}
		r.em.Through(st.Through.Event, r.actor(st.Through.Context), r.handler(st.Through), freq)
		return nil
	}
	return ErrInvalidStep
}

func (r *runner) handler(sub *Subscribe) types.Handler {
	actor := r.actor(sub.Context)
	label := sub.label()
	fail := sub.Panic
	return event.Bind(actor, func(a *Actor) {
		r.report.Calls = append(r.report.Calls, Call{
			Step:    r.step,
			Label:   label,
			Context: a.Name,
			Origin:  r.current.Origin,
			Event:   r.current.Event,
		})
		if fail {
			panic(fmt.Sprintf("%s failed", label))
		}
	})
}
