package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmoraes/tarefas/internal/markdown"
	"github.com/dmoraes/tarefas/internal/ui"
	"github.com/dmoraes/tarefas/task"
	"github.com/muesli/reflow/wordwrap"
)

const detailWidth = 80

// printTaskDetail prints every field of a task, including the derived
// execution span for completed tasks.
func printTaskDetail(w io.Writer, t task.Task) {
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "%s %d\n", ui.Label("ID:"), t.ID)
	fmt.Fprintf(w, "%s %s\n", ui.Label("Título:"), t.Title)
	if t.Description != "" {
		fmt.Fprintf(w, "%s\n%s\n", ui.Label("Descrição:"), renderDescription(t.Description))
	}
	fmt.Fprintf(w, "%s %s\n", ui.Label("Prioridade:"), t.Priority)
	fmt.Fprintf(w, "%s %s\n", ui.Label("Status:"), t.Status)
	fmt.Fprintf(w, "%s %s\n", ui.Label("Origem:"), t.Origin)
	fmt.Fprintf(w, "%s %s\n", ui.Label("Criada em:"), displayTimestamp(t.CreatedAt))

	if t.CompletedAt != nil {
		fmt.Fprintf(w, "%s %s\n", ui.Label("Concluída em:"), displayTimestamp(*t.CompletedAt))
		if breakdown, ok := task.ExecutionSpan(t); ok {
			fmt.Fprintf(w, "%s %s\n", ui.Label("Tempo de execução:"), breakdown)
		}
	}
	fmt.Fprintln(w, strings.Repeat("-", 40))
}

// renderDescription formats a description as terminal markdown, falling
// back to plain word-wrapped text.
func renderDescription(description string) string {
	rendered := markdown.Render(description, detailWidth)
	if rendered == "" {
		rendered = wordwrap.String(strings.TrimSpace(description), detailWidth)
	}
	return rendered
}

// displayTimestamp re-renders a wire timestamp for humans, passing the raw
// value through when it doesn't parse.
func displayTimestamp(value string) string {
	if parsed, ok := task.ParseTime(value); ok {
		return ui.FormatTimestamp(parsed)
	}
	return value
}

// printTaskTable prints a compact table of tasks.
func printTaskTable(w io.Writer, tasks []task.Task) {
	headers := []string{"ID", "TÍTULO", "PRIORIDADE", "STATUS", "ORIGEM", "CRIADA"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			t.Title,
			string(t.Priority),
			string(t.Status),
			string(t.Origin),
			displayTimestamp(t.CreatedAt),
		})
	}
	fmt.Fprint(w, ui.FormatTable(headers, rows))
}
