package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveChart(t *testing.T) {
	dir := t.TempDir()
	c := coffee(t)

	png := filepath.Join(dir, "curve.png")
	require.NoError(t, SaveChart(png, c))
	data, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	svg := filepath.Join(dir, "curve.svg")
	require.NoError(t, SaveChart(svg, c))
	data, err = os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestSaveChart_Failures(t *testing.T) {
	dir := t.TempDir()
	c := coffee(t)

	err := SaveChart(filepath.Join(dir, "curve.bmp"), c)
	assert.True(t, errors.Is(err, ErrExportFailure))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	err = SaveChart(filepath.Join(dir, "nope", "curve.png"), c)
	assert.True(t, errors.Is(err, ErrExportFailure))
}

func TestChart_Labels(t *testing.T) {
	p, err := Chart(coffee(t))
	require.NoError(t, err)
	assert.Equal(t, "Newton's Law of Cooling", p.Title.Text)
	assert.Equal(t, "Time (t)", p.X.Label.Text)
	assert.Equal(t, "Temperature (T)", p.Y.Label.Text)
	assert.InDelta(t, 60.0, p.X.Max, 1e-9)
}
