package viz

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/thermdecay/internal/config"
	"github.com/san-kum/thermdecay/internal/cooling"
	"github.com/san-kum/thermdecay/internal/dialog"
	"github.com/san-kum/thermdecay/internal/export"
	"github.com/san-kum/thermdecay/internal/logger"
)

const (
	panelWidth    = 40
	minPlotWidth  = 20
	minPlotHeight = 5
	defaultExport = "cooling.csv"
)

type StatusKind int

const (
	StatusReady StatusKind = iota
	StatusOK
	StatusWarn
	StatusError
	StatusInfo
)

type status struct {
	kind StatusKind
	text string
}

const (
	fieldT0 = iota
	fieldAmbient
	fieldK
	fieldTMax
	fieldPoints
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Initial Temp (T0)",
	"Ambient Temp (Tenv)",
	"Cooling Constant (k)",
	"Max Time",
	"Resolution (Points)",
}

// exportedMsg reports the outcome of an export started with ctrl+s.
type exportedMsg struct {
	path string
	err  error
}

// Options configure a Workbench.
type Options struct {
	Scenarios  []config.Scenario
	Saver      dialog.Saver
	Log        *logger.Logger
	Theme      Theme
	PlotWidth  int
	PlotHeight int
}

// Workbench is the interactive screen: parameter inputs on the left, the
// chart of the last successful computation on the right, a status line below.
type Workbench struct {
	inputs   [fieldCount]textinput.Model
	focus    int
	selector *config.Selector
	saver    dialog.Saver
	log      *logger.Logger
	styles   Styles
	plot     PlotOptions

	curve  *cooling.Curve
	status status
}

// NewWorkbench builds the workbench and loads the first scenario, so the
// first frame already shows a curve.
func NewWorkbench(o Options) Workbench {
	if o.Log == nil {
		o.Log = logger.Nop()
	}
	if o.Saver == nil {
		o.Saver = dialog.Fixed{Dir: "."}
	}
	if o.Theme.Name == "" {
		o.Theme = ThemeThermal
	}
	if o.PlotWidth <= 0 {
		o.PlotWidth = 60
	}
	if o.PlotHeight <= 0 {
		o.PlotHeight = 15
	}

	w := Workbench{
		selector: config.NewSelector(o.Scenarios),
		saver:    o.Saver,
		log:      o.Log,
		styles:   NewStyles(o.Theme),
		plot:     PlotOptions{Width: o.PlotWidth, Height: o.PlotHeight, Color: true},
		status:   status{kind: StatusReady, text: "Ready"},
	}
	for i := range w.inputs {
		in := textinput.New()
		in.Prompt = "› "
		in.PromptStyle = w.styles.Prompt
		in.CharLimit = 32
		in.Width = panelWidth - 8
		w.inputs[i] = in
	}
	w.inputs[0].Focus()
	w.nextScenario()
	return w
}

func (w Workbench) Init() tea.Cmd { return textinput.Blink }

func (w Workbench) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return w.handleKey(msg)
	case tea.WindowSizeMsg:
		w.resize(msg.Width, msg.Height)
		return w, nil
	case exportedMsg:
		w.finishExport(msg)
		return w, nil
	}
	return w.updateFocused(msg)
}

func (w Workbench) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return w, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		return w, w.moveFocus(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return w, w.moveFocus(-1)
	case tea.KeyEnter:
		w.compute()
		return w, nil
	case tea.KeyCtrlN:
		w.nextScenario()
		return w, nil
	case tea.KeyCtrlS:
		return w, w.startExport()
	}
	return w.updateFocused(msg)
}

func (w Workbench) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	w.inputs[w.focus], cmd = w.inputs[w.focus].Update(msg)
	return w, cmd
}

func (w *Workbench) moveFocus(delta int) tea.Cmd {
	w.inputs[w.focus].Blur()
	w.focus = (w.focus + delta + fieldCount) % fieldCount
	return w.inputs[w.focus].Focus()
}

func (w *Workbench) resize(width, height int) {
	w.plot.Width = max(width-panelWidth-16, minPlotWidth)
	w.plot.Height = max(height-10, minPlotHeight)
}

func (w *Workbench) fields() cooling.Fields {
	return cooling.Fields{
		T0:      w.inputs[fieldT0].Value(),
		Ambient: w.inputs[fieldAmbient].Value(),
		K:       w.inputs[fieldK].Value(),
		TMax:    w.inputs[fieldTMax].Value(),
		Points:  w.inputs[fieldPoints].Value(),
	}
}

func (w *Workbench) setFields(f cooling.Fields) {
	w.inputs[fieldT0].SetValue(f.T0)
	w.inputs[fieldAmbient].SetValue(f.Ambient)
	w.inputs[fieldK].SetValue(f.K)
	w.inputs[fieldTMax].SetValue(f.TMax)
	w.inputs[fieldPoints].SetValue(f.Points)
}

// compute parses the inputs and replaces the curve. On failure the previous
// curve stays.
func (w *Workbench) compute() bool {
	p, err := cooling.ParseParams(w.fields())
	if err == nil {
		var c *cooling.Curve
		if c, err = cooling.Compute(p); err == nil {
			w.curve = c
			w.status = status{StatusOK, "✔ Calculation complete."}
			w.log.Debugw("computed curve", "t0", p.T0, "t_env", p.Ambient, "k", p.K, "t_max", p.TMax, "points", p.Points)
			return true
		}
	}

	w.status = status{StatusError, "❌ Error: " + err.Error()}
	w.log.Debugw("rejected parameters", "err", err)
	return false
}

// nextScenario fills the inputs from the next scenario and computes it.
func (w *Workbench) nextScenario() {
	sc := w.selector.Next()
	w.setFields(cooling.FieldsOf(sc.Params))
	if w.compute() {
		w.status = status{StatusInfo, "ℹ Loaded Topic: " + sc.Name}
	}
	w.log.Debugw("loaded scenario", "name", sc.Name, "next", w.selector.Index())
}

// startExport captures the current curve; the dialog and the write run as a
// command so the UI keeps drawing.
func (w *Workbench) startExport() tea.Cmd {
	if w.curve == nil {
		w.status = status{StatusWarn, "⚠ Run calculation first!"}
		return nil
	}
	curve, saver := w.curve, w.saver
	return func() tea.Msg {
		path, err := saver.SavePath(defaultExport)
		if err != nil {
			return exportedMsg{err: err}
		}
		return exportedMsg{path: path, err: export.SaveCSV(path, curve.Samples)}
	}
}

func (w *Workbench) finishExport(msg exportedMsg) {
	switch {
	case errors.Is(msg.err, dialog.ErrCanceled):
		w.log.Debugw("export canceled")
	case msg.err != nil:
		w.status = status{StatusError, "❌ Save Error: " + msg.err.Error()}
		w.log.Warnw("export failed", "path", msg.path, "err", msg.err)
	default:
		w.status = status{StatusOK, "✔ Saved to " + filepath.Base(msg.path)}
		w.log.Infow("exported curve", "path", msg.path)
	}
}

func (w Workbench) View() string {
	s := w.styles

	var left strings.Builder
	left.WriteString(s.Header.Render(GradientText("PARAMETERS", s.theme.Accent, s.theme.Info)) + "\n")
	for i, in := range w.inputs {
		label := s.Label
		if i == w.focus {
			label = s.FocusedLabel
		}
		left.WriteString(label.Render(fieldLabels[i]) + "\n")
		left.WriteString(in.View() + "\n\n")
	}
	left.WriteString(s.MetricLabel.Render("Model:") + "\n")
	formula := "Formula will appear here"
	if w.curve != nil {
		formula = cooling.Formula(w.curve.Params)
	}
	left.WriteString(s.Formula.Render(formula) + "\n\n")
	left.WriteString(w.keyHints())

	right := w.viewChart()
	body := lipgloss.JoinHorizontal(lipgloss.Top, s.Panel.Render(left.String()), right)
	bar := s.StatusBar.Render(s.Status[w.status.kind].Render(w.status.text))
	return lipgloss.JoinVertical(lipgloss.Left, body, bar)
}

func (w Workbench) viewChart() string {
	s := w.styles
	if w.curve == nil {
		return s.Chart.Render(s.KeyHint.Render("no curve yet"))
	}

	sum := cooling.Summarize(w.curve)
	var b strings.Builder
	b.WriteString(s.Header.Render("Newton's Law of Cooling") + "\n")
	b.WriteString(Plot(w.curve, w.plot) + "\n\n")
	b.WriteString(s.MetricLabel.Render("direction") + s.MetricValue.Render(sum.Direction.String()) + "\n")
	b.WriteString(s.MetricLabel.Render("final") + s.MetricValue.Render(fmt.Sprintf("%.2f", sum.Final)) + "\n")
	b.WriteString(s.MetricLabel.Render("change") + s.MetricValue.Render(fmt.Sprintf("%+.2f", sum.Change)) + "\n")
	if sum.HalfLife > 0 {
		b.WriteString(s.MetricLabel.Render("half-life") + s.MetricValue.Render(fmt.Sprintf("%.2f", sum.HalfLife)) + "\n")
		b.WriteString(s.MetricLabel.Render("gap closed") + s.ProgressBar(sum.Closed, 20) +
			s.MetricValue.Render(fmt.Sprintf(" %.0f%%", 100*sum.Closed)) + "\n")
	}
	return s.Chart.Render(b.String())
}

func (w Workbench) keyHints() string {
	s := w.styles
	hint := func(key, what string) string {
		return s.Key.Render(key) + s.KeyHint.Render(" "+what)
	}
	return strings.Join([]string{
		hint("enter", "compute"),
		hint("ctrl+s", "save csv"),
		hint("ctrl+n", "next scenario"),
		hint("tab", "next field"),
		hint("esc", "quit"),
	}, "\n")
}

// Curve is the last successful computation, nil before the first one.
func (w Workbench) Curve() *cooling.Curve { return w.curve }

// RunWorkbench runs the workbench on the alternate screen until the user
// quits.
func RunWorkbench(o Options) error {
	_, err := tea.NewProgram(NewWorkbench(o), tea.WithAltScreen()).Run()
	return err
}
