package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/guikit/shell"
)

func TestEventLogKeepsNewestLines(t *testing.T) {
	t.Parallel()
	l := newEventLog(3)
	for _, msg := range []string{"a", "b", "c", "d"} {
		l.add(msg)
	}

	var got []string
	for _, line := range l.lines {
		got = append(got, line.CurrValue())
	}
	assert.Equal(t, []string{"  2  b", "  3  c", "  4  d"}, got)
	assert.Equal(t, 4, l.total)
}

func TestEventLogPadsWithBlankLines(t *testing.T) {
	t.Parallel()
	l := newEventLog(3)
	l.add("ready")
	assert.Equal(t, "  1  ready", l.lines[0].CurrValue())
	assert.Empty(t, l.lines[1].CurrValue())
	assert.Len(t, l.elements(), 3)
}

func TestDemoResetRestoresDefaults(t *testing.T) {
	t.Parallel()
	d := newDemo()
	d.mute.SetCurrValue(true)
	d.quality.SetCurrValue(qualityHigh)
	d.count.SetCurrValue(200)
	require.Equal(t, uint8(16), d.count.CurrValue(), "count is clamped to its range")

	d.onReset()
	assert.False(t, d.mute.CurrValue())
	assert.Equal(t, "Medium", d.quality.SelectedText())
	assert.Equal(t, uint8(3), d.count.CurrValue())
	assert.Equal(t, [2]int{640, 480}, d.size.CurrValue())
	assert.Equal(t, "  1  reset (1)", d.log.lines[0].CurrValue())
}

func TestDemoInstall(t *testing.T) {
	t.Parallel()
	d := newDemo()
	dock := shell.NewDockSpace(shell.DefaultConfig().Dock)
	require.NoError(t, d.install(dock))

	side, ok := dock.Side("Controls")
	require.True(t, ok)
	assert.Equal(t, shell.DockLeft, side)
	side, ok = dock.Side("Log")
	require.True(t, ok)
	assert.Equal(t, shell.DockBottom, side)

	require.ErrorIs(t, d.install(dock), shell.ErrDuplicatePanel)
}

func TestConfigPrintCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Printed\n"), 0o600))

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"config", "print", "--config", path})

	require.NoError(t, root.Execute())
	out := buf.String()
	assert.Contains(t, out, "title: Printed")
	assert.Contains(t, out, "theme: dark")
}

func TestConfigThemesCommand(t *testing.T) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"config", "themes"})

	require.NoError(t, root.Execute())
	lines := strings.Fields(buf.String())
	assert.Contains(t, lines, "dark")
	assert.Contains(t, lines, "light")
}

func TestScreenshotFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path string
		want string
	}{
		{path: "a.png", want: "png"},
		{path: "b.JPG", want: "jpg"},
		{path: "c.jpeg", want: "jpeg"},
		{path: "-", want: "png"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			format := formatFromPath(tt.path)
			require.Equal(t, tt.want, format)
			enc, err := encoderFor(format)
			require.NoError(t, err)
			require.NotNil(t, enc)
		})
	}

	_, err := encoderFor(formatFromPath("d.gif"))
	require.ErrorContains(t, err, "gif")
	require.False(t, isTerminal(&bytes.Buffer{}))
}
