package dialog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/thermdecay/internal/logger"
)

type stubSaver struct {
	path  string
	err   error
	calls int
}

func (s *stubSaver) SavePath(string) (string, error) {
	s.calls++
	return s.path, s.err
}

func TestFixed(t *testing.T) {
	path, err := Fixed{Dir: "out"}.SavePath("curve.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "curve.csv"), path)
}

func TestFixed_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	f := Fixed{Dir: dir}

	for _, want := range []string{"cooling.csv", "cooling-1.csv", "cooling-2.csv"} {
		path, err := f.SavePath("cooling.csv")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, want), path)
		require.NoError(t, os.WriteFile(path, []byte("t,T(t)\n"), 0644))
	}
}

func TestLogged_ReportsFallback(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New("debug", &buf)
	require.NoError(t, err)

	broken := &stubSaver{err: errors.New("zenity: executable file not found")}
	fallback := &stubSaver{path: "fallback.csv"}

	path, err := Chain{Logged{Saver: broken, Log: log}, fallback}.SavePath("curve.csv")
	require.NoError(t, err)
	assert.Equal(t, "fallback.csv", path)
	require.NoError(t, log.Sync())
	assert.Contains(t, buf.String(), "save dialog failed")
	assert.Contains(t, buf.String(), "executable file not found")

	buf.Reset()
	canceled := &stubSaver{err: ErrCanceled}
	_, err = Logged{Saver: canceled, Log: log}.SavePath("curve.csv")
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Empty(t, buf.String())
}

func TestChain_FallsBack(t *testing.T) {
	broken := &stubSaver{err: errors.New("zenity: not found")}
	fallback := &stubSaver{path: "fallback.csv"}

	path, err := Chain{broken, fallback}.SavePath("curve.csv")
	require.NoError(t, err)
	assert.Equal(t, "fallback.csv", path)
	assert.Equal(t, 1, broken.calls)
}

func TestChain_StopsOnCancel(t *testing.T) {
	canceled := &stubSaver{err: ErrCanceled}
	fallback := &stubSaver{path: "fallback.csv"}

	_, err := Chain{canceled, fallback}.SavePath("curve.csv")
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Zero(t, fallback.calls)
}

func TestChain_AllFail(t *testing.T) {
	a := &stubSaver{err: errors.New("a")}
	b := &stubSaver{err: errors.New("b")}

	_, err := Chain{a, b}.SavePath("curve.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a")
	assert.Contains(t, err.Error(), "b")

	_, err = Chain{}.SavePath("curve.csv")
	assert.Error(t, err)
}

func TestDefault_Headless(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	if !headless() {
		t.Skip("platform always has a native dialog")
	}
	assert.Equal(t, Fixed{Dir: "exports"}, Default("exports", nil))
}

func TestWithDefaultExt(t *testing.T) {
	assert.Equal(t, "out.csv", withDefaultExt("out", ".csv"))
	assert.Equal(t, "out.txt", withDefaultExt("out.txt", ".csv"))
	assert.Equal(t, "out", withDefaultExt("out", ""))
}
