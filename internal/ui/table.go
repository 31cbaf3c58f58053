// Package ui renders tables, timestamps, and styled text for the terminal.
package ui

import (
	"strings"
	"unicode/utf8"
)

const tableCellMaxWidth = 40
const tableCellEllipsis = "..."

// FormatTable renders headers and rows as an aligned table.
func FormatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = utf8.RuneCountInString(header)
	}

	normalized := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = normalizeTableCell(cell)
			if i < len(widths) {
				if w := utf8.RuneCountInString(cells[i]); w > widths[i] {
					widths[i] = w
				}
			}
		}
		normalized = append(normalized, cells)
	}

	var builder strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			builder.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			padding := widths[i] - utf8.RuneCountInString(cell) + 2
			for ; padding > 0; padding-- {
				builder.WriteByte(' ')
			}
		}
		builder.WriteByte('\n')
	}

	writeRow(headers)
	for _, row := range normalized {
		writeRow(row)
	}

	return builder.String()
}

// normalizeTableCell flattens newlines and truncates long cells.
func normalizeTableCell(cell string) string {
	cell = strings.ReplaceAll(cell, "\n", " ")
	if utf8.RuneCountInString(cell) <= tableCellMaxWidth {
		return cell
	}

	runes := []rune(cell)
	keep := tableCellMaxWidth - len(tableCellEllipsis)
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + tableCellEllipsis
}
