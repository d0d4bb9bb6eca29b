package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Action names.
const (
	ActionOn      = "on"
	ActionOff     = "off"
	ActionEmit    = "emit"
	ActionSeveral = "several"
	ActionThrough = "through"
)

// ErrInvalidStep is wrapped by every validation error.
var ErrInvalidStep = errors.New("scenario: invalid step")

// Scenario is a scripted sequence of emitter operations.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one action.
type Step struct {
	On      *Subscribe `yaml:"on,omitempty"`
	Several *Subscribe `yaml:"several,omitempty"`
	Through *Subscribe `yaml:"through,omitempty"`
	Off     *Target    `yaml:"off,omitempty"`
	Emit    string     `yaml:"emit,omitempty"`
	Repeat  any        `yaml:"repeat,omitempty"` // emit only; default 1
}

// Subscribe describes an on/several/through registration.
// Times and Frequency accept numbers or numeric strings.
type Subscribe struct {
	Event     string `yaml:"event"`
	Context   string `yaml:"context"`
	Label     string `yaml:"label"`
	Times     any    `yaml:"times,omitempty"`
	Frequency any    `yaml:"frequency,omitempty"`
	Panic     bool   `yaml:"panic,omitempty"` // handler panics after recording the call
}

// Target describes an off.
type Target struct {
	Event   string `yaml:"event"`
	Context string `yaml:"context"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every step.
func (s *Scenario) Validate() error {
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			return fmt.Errorf("%w %d: %v", ErrInvalidStep, i+1, err)
		}
	}
	return nil
}

// Action returns the name of the step's action, or "" if it has none or several.
func (st *Step) Action() string {
	var found []string
	if st.On != nil {
		found = append(found, ActionOn)
	}
	if st.Several != nil {
		found = append(found, ActionSeveral)
	}
	if st.Through != nil {
		found = append(found, ActionThrough)
	}
	if st.Off != nil {
		found = append(found, ActionOff)
	}
	if st.Emit != "" {
		found = append(found, ActionEmit)
	}
	if len(found) != 1 {
		return ""
	}
	return found[0]
}

// TimesInt returns the several limit.
func (sub *Subscribe) TimesInt() (int, error) {
	return cast.ToIntE(sub.Times)
}

// FrequencyInt returns the through frequency.
func (sub *Subscribe) FrequencyInt() (int, error) {
	return cast.ToIntE(sub.Frequency)
}

// RepeatInt returns how many times an emit step fires.
func (st *Step) RepeatInt() (int, error) {
	if st.Repeat == nil {
		return 1, nil
	}
	return cast.ToIntE(st.Repeat)
}

func (st *Step) validate() error {
	action := st.Action()
	switch action {
	case "":
		return errors.New("a step needs exactly one of on, several, through, off, emit")

	case ActionEmit:
		n, err := st.RepeatInt()
		if err != nil {
			return fmt.Errorf("repeat: %w", err)
		}
		if n < 1 {
			return fmt.Errorf("repeat must be at least 1, got %d", n)
		}
		return nil

	case ActionOff:
		if st.Off.Event == "" || st.Off.Context == "" {
			return errors.New("off needs event and context")
		}
		return nil
	}

	if st.Repeat != nil {
		return fmt.Errorf("repeat is only valid for emit")
	}

	sub := st.subscribe()
	if sub.Event == "" || sub.Context == "" {
		return fmt.Errorf("%s needs event and context", action)
	}

	switch action {
	case ActionSeveral:
		if _, err := sub.TimesInt(); err != nil || sub.Times == nil {
			return fmt.Errorf("several needs numeric times, got %v", sub.Times)
		}
	case ActionThrough:
		// Non-positive values are left for the emitter to reject.
		if _, err := sub.FrequencyInt(); err != nil || sub.Frequency == nil {
			return fmt.Errorf("through needs numeric frequency, got %v", sub.Frequency)
		}
	}
	return nil
}

func (st *Step) subscribe() *Subscribe {
	switch {
	case st.On != nil:
		return st.On
	case st.Several != nil:
		return st.Several
	default:
		return st.Through
	}
}

// label returns sub.Label, defaulting to context@event.
func (sub *Subscribe) label() string {
	if sub.Label != "" {
		return sub.Label
	}
	return sub.Context + "@" + sub.Event
}
