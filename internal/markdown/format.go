package markdown

import (
	"strings"

	"github.com/nakachan-ing/mdtodo/internal/model"
)

// FormatTask renders the canonical line for a task. Parsing the result
// in a section of the same status gives back an equivalent task.
func FormatTask(task model.Task) string {
	parts := make([]string, 0, 8)

	if task.Completed {
		parts = append(parts, "- [x]")
	} else {
		parts = append(parts, "- [ ]")
	}

	done := task.Status == model.StatusDone
	if task.Completed && done {
		parts = append(parts, "~~"+task.Text+"~~")
	} else {
		parts = append(parts, task.Text)
	}

	if task.WaitingFor != "" && (task.Status == model.StatusWaiting || task.Status == model.StatusBlocked) {
		parts = append(parts, WaitingArrow+" _"+task.WaitingFor+"_")
	}

	for _, tag := range task.Tags {
		parts = append(parts, "`#"+tag+"`")
	}

	if task.Deadline != "" {
		parts = append(parts, "`"+DeadlineGlyph+" "+task.Deadline+"`")
	}
	if task.Duration != "" {
		parts = append(parts, "`~"+task.Duration+"`")
	}

	if !done {
		switch task.Priority {
		case model.PriorityHigh:
			parts = append(parts, HighGlyph)
		case model.PriorityQuick:
			parts = append(parts, QuickGlyph)
		}
	}

	if done && task.CompletedDate != "" {
		parts = append(parts, StampGlyph+" "+task.CompletedDate)
	}

	return strings.Join(parts, " ")
}

// FormatFocus renders the focus-note line. An empty note is written as
// the bracketed placeholder.
func (g *Grammar) FormatFocus(note string) string {
	value := strings.TrimSpace(note)
	if value == "" {
		value = "[" + g.Keywords.FocusPlaceholder + "]"
	}
	return "> " + g.focusToken() + " _" + value + "_"
}
