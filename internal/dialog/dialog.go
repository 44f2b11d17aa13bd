// Package dialog asks the user where to save an export.
package dialog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/san-kum/thermdecay/internal/logger"
)

// ErrCanceled means the user dismissed the dialog; callers treat it as
// "do nothing".
var ErrCanceled = errors.New("dialog: canceled")

// Saver returns the path to write an export to.
type Saver interface {
	SavePath(suggested string) (string, error)
}

// Zenity opens the platform's native save dialog.
type Zenity struct {
	Title string
	Dir   string
}

func (z Zenity) SavePath(suggested string) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title(z.Title),
		zenity.Filename(filepath.Join(z.Dir, suggested)),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "CSV Files",
			Patterns: []string{"*.csv"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", ErrCanceled
		}
		return "", err
	}
	if path == "" {
		return "", ErrCanceled
	}
	return withDefaultExt(path, filepath.Ext(suggested)), nil
}

// Fixed saves under Dir without asking. It never picks an existing file:
// when the suggested name is taken it numbers the copy, as in
// cooling-1.csv.
type Fixed struct {
	Dir string
}

func (f Fixed) SavePath(suggested string) (string, error) {
	ext := filepath.Ext(suggested)
	stem := strings.TrimSuffix(suggested, ext)

	path := filepath.Join(f.Dir, suggested)
	for i := 1; ; i++ {
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", err
		}
		path = filepath.Join(f.Dir, fmt.Sprintf("%s-%d%s", stem, i, ext))
	}
}

// Logged reports failures of the wrapped saver before passing them on, so
// a Chain that falls back does not hide why.
type Logged struct {
	Saver
	Log *logger.Logger
}

func (l Logged) SavePath(suggested string) (string, error) {
	path, err := l.Saver.SavePath(suggested)
	if err != nil && !errors.Is(err, ErrCanceled) {
		l.Log.Warnw("save dialog failed, falling back", "err", err)
	}
	return path, err
}

// Chain tries each saver in order until one succeeds or the user cancels.
type Chain []Saver

func (c Chain) SavePath(suggested string) (string, error) {
	var errs []error
	for _, s := range c {
		path, err := s.SavePath(suggested)
		if err == nil || errors.Is(err, ErrCanceled) {
			return path, err
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", errors.New("dialog: no saver configured")
	}
	return "", errors.Join(errs...)
}

// Default uses the native dialog when a display is available and falls back
// to writing into dir. A failing dialog is logged to log.
func Default(dir string, log *logger.Logger) Saver {
	fixed := Fixed{Dir: dir}
	if headless() {
		return fixed
	}
	if log == nil {
		log = logger.Nop()
	}
	return Chain{Logged{Saver: Zenity{Title: "Save curve", Dir: dir}, Log: log}, fixed}
}

func headless() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return false
	}
	return os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}

func withDefaultExt(path, ext string) string {
	if ext == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + ext
}
