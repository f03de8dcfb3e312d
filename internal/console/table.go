package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PrintTable prints a table with the given headers and data.
// data should be a flat list of strings, length must be a multiple of len(headers).
// useLineChars determines if Unicode box drawing characters are used.
func PrintTable(w io.Writer, headers []string, data []string, useLineChars bool) {
	cols := len(headers)
	if cols == 0 {
		return
	}

	colWidths := make([]int, cols)
	for i, h := range headers {
		colWidths[i] = max(colWidths[i], runewidth.StringWidth(Strip(h)))
	}
	for i, d := range data {
		col := i % cols
		colWidths[col] = max(colWidths[col], runewidth.StringWidth(Strip(d)))
	}

	horizontal, vertical, cross := "-", "|", "+"
	if useLineChars {
		horizontal, vertical, cross = "─", "│", "┼"
	}

	var border strings.Builder
	border.WriteString(cross)
	for _, width := range colWidths {
		border.WriteString(strings.Repeat(horizontal, width+2))
		border.WriteString(cross)
	}

	printRow := func(rowItems []string) {
		var row strings.Builder
		row.WriteString(vertical)
		for i, item := range rowItems {
			padding := colWidths[i] - runewidth.StringWidth(Strip(item))
			row.WriteString(" ")
			row.WriteString(item)
			row.WriteString(strings.Repeat(" ", padding))
			row.WriteString(" ")
			row.WriteString(vertical)
		}
		fmt.Fprintln(w, Parse(row.String()))
	}

	fmt.Fprintln(w, border.String())
	printRow(headers)
	fmt.Fprintln(w, border.String())
	for i := 0; i < len(data); i += cols {
		rowSlice := data[i:min(i+cols, len(data))]
		if len(rowSlice) < cols {
			filled := make([]string, cols)
			copy(filled, rowSlice)
			rowSlice = filled
		}
		printRow(rowSlice)
	}
	fmt.Fprintln(w, border.String())
}
