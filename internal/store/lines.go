package store

import (
	"strings"

	"github.com/nakachan-ing/mdtodo/internal/markdown"
	"github.com/nakachan-ing/mdtodo/internal/model"
)

// Lines is the in-memory line buffer of a todo file. Splitting and
// joining on "\n" round-trips the file exactly, including a trailing
// newline (kept as a final empty line).
type Lines []string

func SplitLines(content string) Lines {
	return Lines(strings.Split(content, "\n"))
}

func (l Lines) String() string {
	return strings.Join(l, "\n")
}

func (l *Lines) InsertAt(i int, line string) {
	s := *l
	if i < 0 {
		i = 0
	}
	if i >= len(s) {
		*l = append(s, line)
		return
	}
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = line
	*l = s
}

func (l *Lines) DeleteAt(i int) string {
	s := *l
	removed := s[i]
	*l = append(s[:i], s[i+1:]...)
	return removed
}

func (l Lines) ReplaceAt(i int, line string) {
	l[i] = line
}

func (l Lines) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}

// Append adds a line at the end of the content, before the trailing
// newline if the buffer has one.
func (l *Lines) Append(line string) int {
	s := *l
	if n := len(s); n > 0 && s[n-1] == "" {
		l.InsertAt(n-1, line)
		return n - 1
	}
	*l = append(s, line)
	return len(s)
}

// sectionSpan is the [Start, End) line range of one top-level section;
// Start is the header line.
type sectionSpan struct {
	Start int
	End   int
}

// findSection returns the span of the first header that the grammar maps
// to status.
func (l Lines) findSection(g *markdown.Grammar, status model.Status) (sectionSpan, bool) {
	for i, line := range l {
		if sk, ok := g.SectionFor(line); ok && sk.Status == status {
			return sectionSpan{Start: i, End: l.sectionEnd(i)}, true
		}
	}
	return sectionSpan{}, false
}

func (l Lines) sectionEnd(start int) int {
	for i := start + 1; i < len(l); i++ {
		if markdown.IsHeader(l[i]) {
			return i
		}
	}
	return len(l)
}

// enclosingHeader walks up from i to the nearest top-level header.
func (l Lines) enclosingHeader(i int) (int, bool) {
	for j := i; j >= 0; j-- {
		if markdown.IsHeader(l[j]) {
			return j, true
		}
	}
	return -1, false
}

// taskLines lists the lines in span that parse to a task.
func (l Lines) taskLines(span sectionSpan) []int {
	var idx []int
	for i := span.Start + 1; i < span.End; i++ {
		if markdown.HasTaskText(l[i]) {
			idx = append(idx, i)
		}
	}
	return idx
}

type insertPosition int

const (
	atTail insertPosition = iota
	atHead
)

// insertInto places line in the task block of the section for status.
// An empty section gets the line after its header and any blank lines;
// a missing section degrades to appending at the end of the content.
func (l *Lines) insertInto(g *markdown.Grammar, status model.Status, line string, pos insertPosition) int {
	span, ok := l.findSection(g, status)
	if !ok {
		return l.Append(line)
	}

	var at int
	tasks := l.taskLines(span)
	switch {
	case len(tasks) == 0:
		end := span.End
		// the empty string after a trailing newline is not content
		if end == len(*l) && end > span.Start+1 && (*l)[end-1] == "" {
			end--
		}
		at = span.Start + 1
		for at < end && strings.TrimSpace((*l)[at]) == "" {
			at++
		}
	case pos == atHead:
		at = tasks[0]
	default:
		at = tasks[len(tasks)-1] + 1
	}

	l.InsertAt(at, line)
	return at
}
