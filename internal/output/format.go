// Package output provides formatters for shell output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/filter"
	"todo/internal/task"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {NAME}\n" ("[ ]" when not completed)
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, checkbox(t.Completed), normalizeName(t.Name))
}

// FormatTaskDetail formats a task with its ID, for the show command.
func FormatTaskDetail(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "id:        %s\n", t.ID)
	fmt.Fprintf(w, "name:      %s\n", normalizeName(t.Name))
	fmt.Fprintf(w, "completed: %t\n", t.Completed)
}

// FormatHeading writes the remaining-count heading.
func FormatHeading(w io.Writer, remaining int) {
	fmt.Fprintln(w, Heading(remaining))
}

// Heading returns "1 task remaining" or "<n> tasks remaining".
func Heading(remaining int) string {
	noun := "tasks"
	if remaining == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%d %s remaining", remaining, noun)
}

// FormatFilterBar writes all filter names, the selected one in brackets.
func FormatFilterBar(w io.Writer, selected filter.Name) {
	names := filter.Names()
	parts := make([]string, len(names))
	for i, n := range names {
		if n == selected {
			parts[i] = "[" + string(n) + "]"
		} else {
			parts[i] = string(n)
		}
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// normalizeName normalizes a task name for display.
// - Empty or whitespace-only names become "(untitled)"
// - Newlines are replaced with spaces
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")

	if strings.TrimSpace(name) == "" {
		return "(untitled)"
	}
	return name
}
