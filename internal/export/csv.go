// Package export writes computed curves to files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/thermdecay/internal/cooling"
)

var header = []string{"t", "T(t)"}

// ErrBadFormat is returned by ReadCSV for input that is not an export.
var ErrBadFormat = errors.New("export: not a cooling curve export")

// WriteCSV writes the header row followed by one row per sample. Values use
// the shortest representation that parses back to the same float.
func WriteCSV(w io.Writer, samples []cooling.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, 2)
	for _, s := range samples {
		row[0] = strconv.FormatFloat(s.Time, 'g', -1, 64)
		row[1] = strconv.FormatFloat(s.Temp, 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV creates path and writes samples to it. Any failure, including an
// error closing the file, is an ErrExportFailure.
func SaveCSV(path string, samples []cooling.Sample) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fail(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fail(path, cerr)
		}
	}()

	if err := WriteCSV(f, samples); err != nil {
		return fail(path, err)
	}
	return nil
}

// ReadCSV reads an export written by WriteCSV.
func ReadCSV(r io.Reader) ([]cooling.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	head, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrBadFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if head[0] != header[0] || head[1] != header[1] {
		return nil, fmt.Errorf("%w: unexpected header %q", ErrBadFormat, head)
	}

	samples := make([]cooling.Sample, 0)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadFormat, line, err)
		}
		temp, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadFormat, line, err)
		}
		samples = append(samples, cooling.Sample{Time: t, Temp: temp})
	}
	return samples, nil
}

func LoadCSV(path string) ([]cooling.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}
