package scenario_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/emitter/event"
	"github.com/yaoapp/emitter/scenario"
)

func TestLoad_Lecture(t *testing.T) {
	s, err := scenario.Load("testdata/lecture.yaml")
	require.NoError(t, err)
	assert.Equal(t, "lecture", s.Name)
	require.Len(t, s.Steps, 10)
	assert.Equal(t, scenario.ActionOn, s.Steps[0].Action())
	assert.Equal(t, scenario.ActionSeveral, s.Steps[3].Action())
	assert.Equal(t, scenario.ActionThrough, s.Steps[4].Action())
	assert.Equal(t, scenario.ActionEmit, s.Steps[6].Action())
	assert.Equal(t, scenario.ActionOff, s.Steps[7].Action())

	freq, err := s.Steps[4].Through.FrequencyInt()
	require.NoError(t, err)
	assert.Equal(t, 2, freq, "quoted numbers are accepted")

	n, err := s.Steps[6].RepeatInt()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestLoad_Errors(t *testing.T) {
	_, err := scenario.Load("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = scenario.Load("testdata/broken.yaml")
	assert.ErrorIs(t, err, scenario.ErrInvalidStep)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty step":          "steps:\n  - {}\n",
		"off without ctx":     "steps:\n  - off: {event: a}\n",
		"on without event":    "steps:\n  - on: {context: ann}\n",
		"several no times":    "steps:\n  - several: {event: a, context: ann}\n",
		"several bad times":   "steps:\n  - several: {event: a, context: ann, times: lots}\n",
		"through no freq":     "steps:\n  - through: {event: a, context: ann}\n",
		"zero repeat":         "steps:\n  - emit: a\n    repeat: 0\n",
		"repeat on subscribe": "steps:\n  - on: {event: a, context: ann}\n    repeat: 2\n",
	}
	for name, doc := range cases {
		_, err := scenario.Parse([]byte(doc))
		assert.ErrorIs(t, err, scenario.ErrInvalidStep, name)
	}

	_, err := scenario.Parse([]byte("steps: [unterminated"))
	assert.Error(t, err)
}

func TestRun_Lecture(t *testing.T) {
	s, err := scenario.Load("testdata/lecture.yaml")
	require.NoError(t, err)

	report, err := scenario.Run(s)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count("ann-begin"))
	assert.Equal(t, 2, report.Count("cat-text"))
	assert.Equal(t, 4, report.Count("bob-slide"))
	assert.Equal(t, 2, report.Count("dan-slide"))
	assert.Equal(t, 0, report.Count("ann-funny"))
	assert.Len(t, report.Calls, 9)
	assert.Equal(t, []string{"ann-begin", "cat-text", "bob-slide", "dan-slide"}, report.Labels())

	assert.Equal(t, scenario.Call{Step: 7, Label: "cat-text", Context: "cat", Origin: "slide.text", Event: "slide.text"}, report.Calls[1])
	assert.Equal(t, scenario.Call{Step: 7, Label: "bob-slide", Context: "bob", Origin: "slide.text", Event: "slide"}, report.Calls[2])
	assert.Equal(t, "#7 slide.text -> bob-slide [bob] via slide", report.Calls[2].String())
	assert.Equal(t, "#6 begin -> ann-begin [ann]", report.Calls[0].String())
}

func TestRun_DefaultLabel(t *testing.T) {
	s, err := scenario.Parse([]byte("steps:\n  - on: {event: a.b, context: ann}\n  - emit: a.b.c\n"))
	require.NoError(t, err)

	report, err := scenario.Run(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"ann@a.b"}, report.Labels())
}

func TestRun_PanicsWithRecover(t *testing.T) {
	s, err := scenario.Load("testdata/panics.yaml")
	require.NoError(t, err)

	report, err := scenario.Run(s, event.Recover())
	require.Error(t, err)
	assert.True(t, errors.Is(err, event.ErrHandlerPanic))
	assert.True(t, errors.Is(err, event.ErrInvalidFrequency))
	assert.Equal(t, []string{"boom", "after", "parent"}, report.Labels())
	assert.Zero(t, report.Count("never"))
}

func TestRun_PanicsPropagateWithoutRecover(t *testing.T) {
	s, err := scenario.Load("testdata/panics.yaml")
	require.NoError(t, err)

	assert.PanicsWithValue(t, "boom failed", func() { _, _ = scenario.Run(s) })
}
