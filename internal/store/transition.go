package store

import (
	"github.com/nakachan-ing/mdtodo/internal/markdown"
	"github.com/nakachan-ing/mdtodo/internal/model"
)

type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

type ReorderKind int

const (
	NotMoved ReorderKind = iota
	// Swapped means the task traded places with its neighbour inside the
	// same section.
	Swapped
	// SectionChanged means the task crossed into another section; the
	// result's Status names it.
	SectionChanged
)

type ReorderResult struct {
	Kind   ReorderKind
	Status model.Status
}

func (r ReorderResult) Moved() bool {
	return r.Kind != NotMoved
}

// Reorder moves a task one step up or down. Inside a section it swaps with
// the neighbouring task line. At the edge of a section it crosses into the
// nearest section in canonical order that exists in the file: going up it
// lands at the end of that section's tasks, going down at the start.
func (f *TodoFile) Reorder(task model.Task, dir Direction) (ReorderResult, error) {
	var out ReorderResult
	_, err := f.edit(func(lines *Lines) Result {
		idx := locate(*lines, task)
		if idx < 0 {
			f.Logger.Debug("task to reorder not found", "text", task.Text)
			return NotFound
		}

		header, ok := lines.enclosingHeader(idx)
		if !ok {
			return NotFound
		}
		sk, ok := f.Grammar.SectionFor((*lines)[header])
		if !ok {
			return NotFound
		}
		span := sectionSpan{Start: header, End: lines.sectionEnd(header)}
		tasks := lines.taskLines(span)
		pos := indexOf(tasks, idx)
		if pos < 0 {
			return NotFound
		}

		if dir == Up && pos > 0 {
			lines.Swap(idx, tasks[pos-1])
			out = ReorderResult{Kind: Swapped, Status: sk.Status}
			return Applied
		}
		if dir == Down && pos < len(tasks)-1 {
			lines.Swap(idx, tasks[pos+1])
			out = ReorderResult{Kind: Swapped, Status: sk.Status}
			return Applied
		}

		to, ok := lines.neighbour(f.Grammar, sk.Status, dir)
		if !ok {
			f.Logger.Debug("no section to cross into", "status", sk.Status, "direction", dir)
			return NotFound
		}

		line := lines.DeleteAt(idx)
		line = TransformLine(line, sk.Status, to, f.today())
		where := atTail
		if dir == Down {
			where = atHead
		}
		at := lines.insertInto(f.Grammar, to, line, where)
		f.Logger.Debug("task crossed sections", "from", sk.Status, "to", to, "line", at+1)
		out = ReorderResult{Kind: SectionChanged, Status: to}
		return Applied
	})
	if err != nil {
		return ReorderResult{}, err
	}
	return out, nil
}

// neighbour walks the canonical order away from status and returns the
// first section whose header is present.
func (l Lines) neighbour(g *markdown.Grammar, status model.Status, dir Direction) (model.Status, bool) {
	step := 1
	if dir == Up {
		step = -1
	}
	for i := status.Index() + step; i >= 0 && i < len(model.StatusOrder); i += step {
		if _, ok := l.findSection(g, model.StatusOrder[i]); ok {
			return model.StatusOrder[i], true
		}
	}
	return "", false
}

// TransformLine rewrites a task line for a move between two sections.
// Only moves into or out of done change the line.
func TransformLine(line string, from, to model.Status, date string) string {
	switch {
	case from == to:
		return line
	case to == model.StatusDone:
		line = markdown.Strike(markdown.SetCheckbox(line, true))
		if !markdown.HasStamp(line) {
			line = markdown.AddStamp(line, date)
		}
		return line
	case from == model.StatusDone:
		return markdown.StripStamp(markdown.Unstrike(markdown.SetCheckbox(line, false)))
	}
	return line
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}
