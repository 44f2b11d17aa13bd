package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/thermdecay/internal/cooling"
)

func coffee(t *testing.T) *cooling.Curve {
	t.Helper()
	c, err := cooling.Compute(cooling.Params{T0: 90, Ambient: 25, K: 0.07, TMax: 60, Points: 100})
	require.NoError(t, err)
	return c
}

func TestWriteCSV_Format(t *testing.T) {
	var buf bytes.Buffer
	samples := []cooling.Sample{{Time: 0, Temp: 90}, {Time: 0.5, Temp: 87.25}}

	require.NoError(t, WriteCSV(&buf, samples))
	assert.Equal(t, "t,T(t)\n0,90\n0.5,87.25\n", buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "t,T(t)\n", buf.String())
}

func TestSaveCSV_RoundTrip(t *testing.T) {
	c := coffee(t)
	path := filepath.Join(t.TempDir(), "coffee.csv")

	require.NoError(t, SaveCSV(path, c.Samples))

	got, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, c.Samples, got)
}

func TestSaveCSV_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	err := SaveCSV(path, coffee(t).Samples)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExportFailure))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var eerr *Error
	require.True(t, errors.As(err, &eerr))
	assert.Equal(t, path, eerr.Path)
}

func TestReadCSV_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "time,temp\n0,1\n"},
		{"three columns", "t,T(t)\n0,1,2\n"},
		{"non numeric time", "t,T(t)\nzero,1\n"},
		{"non numeric temp", "t,T(t)\n0,hot\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrBadFormat)
		})
	}
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	got, err := ReadCSV(strings.NewReader("t,T(t)\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}
