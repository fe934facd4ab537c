package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/agatho/bottree/pkg/btree"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleError for error messages.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Issue Output
// =============================================================================

// printIssues writes a validation issue list to w, one line per issue,
// errors before warnings in severity color.
func printIssues(w io.Writer, issues []btree.Issue) {
	for _, is := range issues {
		if is.Severity != btree.SeverityError {
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", StyleError.Render(iconError), is.Message)
	}
	for _, is := range issues {
		if is.Severity != btree.SeverityWarning {
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", StyleWarning.Render(iconWarning), is.Message)
	}
}

// issueCounts tallies issues by severity.
func issueCounts(issues []btree.Issue) (errors, warnings int) {
	for _, is := range issues {
		switch is.Severity {
		case btree.SeverityError:
			errors++
		case btree.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
