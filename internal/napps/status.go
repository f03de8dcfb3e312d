package napps

import (
	"cmp"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// StatusCode summarizes whether an installed NApp is enabled.
type StatusCode string

const (
	StatusEnabled  StatusCode = "IE" // Installed, Enabled
	StatusDisabled StatusCode = "ID" // Installed, Disabled
)

// Label is the bracketed form shown in the status column.
func (s StatusCode) Label() string {
	return "[" + string(s) + "]"
}

// Entry is a NApp tagged with its status.
type Entry struct {
	NApp
	Status StatusCode
}

const (
	statusTitle  = "Status"
	nappTitle    = "NApp"
	statusLegend = "Status: (I)nstalled, (E)nabled, (D)isabled"
)

// Classify tags enabled NApps IE and disabled ones ID and orders the result
// by author, name and status. A NApp reported in both sets yields two entries.
func Classify(enabled, disabled []NApp) []Entry {
	entries := make([]Entry, 0, len(enabled)+len(disabled))
	for _, n := range enabled {
		entries = append(entries, Entry{NApp: n, Status: StatusEnabled})
	}
	for _, n := range disabled {
		entries = append(entries, Entry{NApp: n, Status: StatusDisabled})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.Author, b.Author),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.Status.Label(), b.Status.Label()),
		)
	})
	return entries
}

// Render builds the status report for the given NApps.
func Render(enabled, disabled []NApp) string {
	entries := Classify(enabled, disabled)

	rows := make([][2]string, len(entries))
	for i, e := range entries {
		rows[i] = [2]string{e.Status.Label(), e.NApp.String()}
	}

	widths := [2]int{runewidth.StringWidth(statusTitle), runewidth.StringWidth(nappTitle)}
	for _, row := range rows {
		for col, cell := range row {
			widths[col] = max(widths[col], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(center(statusTitle, widths[0]) + " " + center(nappTitle, widths[1]) + "\n")
	sb.WriteString(strings.Repeat("=", widths[0]) + " " + strings.Repeat("=", widths[1]) + "\n")
	for _, row := range rows {
		sb.WriteString(center(row[0], widths[0]) + " " + padRight(row[1], widths[1]) + "\n")
	}
	sb.WriteString("\n" + statusLegend + "\n\n")
	return sb.String()
}

// PrintStatus writes the status report to w.
func PrintStatus(w io.Writer, enabled, disabled []NApp) error {
	_, err := io.WriteString(w, Render(enabled, disabled))
	return err
}

// center pads s to width display columns; an odd leftover column goes to the right.
func center(s string, width int) string {
	extra := width - runewidth.StringWidth(s)
	if extra <= 0 {
		return s
	}
	left := extra / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", extra-left)
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
