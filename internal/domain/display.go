package domain

import (
	"sort"
	"strings"
)

// SortForDisplay orders tasks in place: incomplete before complete, then by
// name. The sort is stable so equal keys keep their storage order.
func SortForDisplay(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Done != tasks[j].Done {
			return !tasks[i].Done
		}
		return tasks[i].Name < tasks[j].Name
	})
}

// FormatList renders one display line per task, newline-joined.
func FormatList(tasks []*Task) string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, task.DisplayLine())
	}
	return strings.Join(lines, "\n")
}
