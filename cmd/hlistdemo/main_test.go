package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/hlist"
)

// execute runs a fresh command tree with args.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestValidateAcceptsConfiguration(t *testing.T) {
	stdout, _, err := execute(t, "validate", "--mode", "registry", "--registry", "--loader")
	require.NoError(t, err)
	require.Equal(t, "ok: valid registry configuration\n", stdout)

	stdout, _, err = execute(t, "validate", "--mode", "elements", "--elements-loader", "--divider", "line")
	require.NoError(t, err)
	require.Equal(t, "ok: valid elements configuration\n", stdout)
}

func TestValidateReportsConfigurationError(t *testing.T) {
	_, stderr, err := execute(t, "validate", "--mode", "registry", "--loader")
	require.True(t, hlist.IsConfigurationError(err))
	require.Contains(t, stderr, "configuration error: registry mode requires a Registry")
	require.Contains(t, stderr, "suggestion: map every item kind")
}

func TestValidateFlagsDoNotLeakBetweenRuns(t *testing.T) {
	_, _, err := execute(t, "validate", "--registry", "--items")
	require.NoError(t, err)

	_, _, err = execute(t, "validate", "--items")
	require.True(t, hlist.IsConfigurationError(err))
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	_, stderr, err := execute(t, "validate", "--mode", "grid")
	require.EqualError(t, err, `unknown mode "grid"`)
	require.Contains(t, stderr, `unknown mode "grid"`)
}

func TestRunRejectsBadFlagsBeforeOpeningTerminal(t *testing.T) {
	_, _, err := execute(t, "run", "--mode", "grid")
	require.EqualError(t, err, `unknown mode "grid"`)

	_, _, err = execute(t, "run", "--page-size", "ten")
	require.Error(t, err)
}

func TestBuildConfig(t *testing.T) {
	cmd := newRunCmd(&logOptions{})
	cfg, settings, err := buildConfig(cmd, &runOptions{
		mode:       "elements",
		pageSize:   7,
		noInfinite: true,
		divider:    "line",
		scrollBar:  true,
	})
	require.NoError(t, err)
	require.Equal(t, hlist.ModeElements, cfg.Mode)
	require.Equal(t, 7, cfg.PageSize)
	require.False(t, cfg.InfiniteScroll)
	require.Equal(t, hlist.DividerLine, cfg.Divider)
	require.True(t, cfg.ScrollBar)
	require.NotNil(t, cfg.Translator)
	require.Empty(t, settings.Border)

	_, _, err = buildConfig(cmd, &runOptions{mode: "registry", divider: "wavy"})
	require.Error(t, err)
}
