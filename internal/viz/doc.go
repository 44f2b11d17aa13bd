// Package viz draws cooling curves in the terminal.
//
// [Plot] renders a curve with asciigraph for plain command output, and
// [Workbench] is the interactive Bubble Tea screen:
//
//	enter   - compute from the current inputs
//	ctrl+s  - save the last curve as CSV
//	ctrl+n  - load the next preset scenario
//	tab     - next field (shift+tab for the previous one)
//	esc     - quit
//
// Colors come from a [Theme]; see [ThemeNames].
package viz
