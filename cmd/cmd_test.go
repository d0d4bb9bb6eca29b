package cmd

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/emitter/config"
)

func noColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestReplay(t *testing.T) {
	noColor(t)
	var out bytes.Buffer
	require.NoError(t, replay(&out, "../scenario/testdata/lecture.yaml", false))

	text := out.String()
	assert.Contains(t, text, "scenario lecture")
	assert.Contains(t, text, "#6 begin -> ann-begin [ann]")
	assert.Contains(t, text, "#7 slide.text -> bob-slide [bob] via slide")
	assert.Regexp(t, `bob-slide\s+4`, text)
}

func TestReplayErrors(t *testing.T) {
	noColor(t)
	var out bytes.Buffer
	err := replay(&out, "../scenario/testdata/panics.yaml", true)
	require.Error(t, err)
	assert.Contains(t, out.String(), "errors:")
	assert.Contains(t, out.String(), "boom failed")

	assert.Error(t, replay(&out, "../scenario/testdata/missing.yaml", true))
}

func TestReplayPanicWithoutRecover(t *testing.T) {
	noColor(t)
	var out bytes.Buffer
	var err error
	require.NotPanics(t, func() {
		err = replay(&out, "../scenario/testdata/panics.yaml", false)
	})
	require.Error(t, err)
	assert.Equal(t, "replay panics: handler panicked: boom failed (use --recover to keep delivering)", err.Error())
	assert.Empty(t, out.String())
}

func TestRootCommand(t *testing.T) {
	noColor(t)
	defer func() { _ = config.Apply(config.Config{Mode: config.ModeProduction, LogMode: "TEXT", LogLevel: "info"}) }()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	rootCmd.SetArgs([]string{"--recover", "env"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "EMITTER_RECOVER=true")
	assert.Contains(t, out.String(), "EMITTER_LOG=(stderr)")

	out.Reset()
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, VERSION+"\n", out.String())
}

func TestVersion(t *testing.T) {
	v, err := version()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.Major)
}
