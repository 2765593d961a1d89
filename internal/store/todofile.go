package store

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nakachan-ing/mdtodo/internal/markdown"
	"github.com/nakachan-ing/mdtodo/internal/model"
)

// Result tells the caller whether a mutation touched the file.
type Result int

const (
	// NotFound means the target line is no longer in the file; nothing
	// was written.
	NotFound Result = iota
	Applied
)

func (r Result) String() string {
	if r == Applied {
		return "applied"
	}
	return "not found"
}

// TodoFile applies mutations to one todo document on disk. Every call is
// a full read-modify-write; nothing is cached between calls.
type TodoFile struct {
	Path    string
	Grammar *markdown.Grammar
	FS      FileSystem
	Now     func() time.Time
	Logger  *log.Logger
}

type Option func(*TodoFile)

func WithFileSystem(fs FileSystem) Option {
	return func(f *TodoFile) { f.FS = fs }
}

func WithClock(now func() time.Time) Option {
	return func(f *TodoFile) { f.Now = now }
}

func WithLogger(logger *log.Logger) Option {
	return func(f *TodoFile) { f.Logger = logger }
}

func New(path string, g *markdown.Grammar, opts ...Option) *TodoFile {
	if g == nil {
		g = markdown.DefaultGrammar()
	}
	f := &TodoFile{
		Path:    path,
		Grammar: g,
		FS:      OSFileSystem{},
		Now:     time.Now,
		Logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *TodoFile) Exists() bool {
	return f.FS.Exists(f.Path)
}

// Load parses the current file content.
func (f *TodoFile) Load() (*model.Document, error) {
	data, err := f.FS.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return markdown.Parse(string(data), f.Grammar), nil
}

// today returns the completion stamp date, dd/mm.
func (f *TodoFile) today() string {
	return f.Now().Format("02/01")
}

// edit runs one read-modify-write cycle. The file is written only when
// fn reports Applied.
func (f *TodoFile) edit(fn func(lines *Lines) Result) (Result, error) {
	data, err := f.FS.ReadFile(f.Path)
	if err != nil {
		return NotFound, err
	}
	lines := SplitLines(string(data))

	res := fn(&lines)
	if res != Applied {
		return res, nil
	}
	if err := f.FS.WriteFile(f.Path, []byte(lines.String())); err != nil {
		return NotFound, err
	}
	return Applied, nil
}

// Add writes a new task line at the end of its section's task block.
func (f *TodoFile) Add(task model.Task) (Result, error) {
	line := markdown.FormatTask(task)
	return f.edit(func(lines *Lines) Result {
		at := lines.insertInto(f.Grammar, task.Status, line, atTail)
		f.Logger.Debug("task added", "status", task.Status, "line", at+1)
		return Applied
	})
}

// Remove deletes the task's source line.
func (f *TodoFile) Remove(task model.Task) (Result, error) {
	return f.edit(func(lines *Lines) Result {
		idx := locate(*lines, task)
		if idx < 0 {
			f.Logger.Debug("task to remove not found", "text", task.Text)
			return NotFound
		}
		lines.DeleteAt(idx)
		f.Logger.Debug("task removed", "line", idx+1)
		return Applied
	})
}

// Update replaces the old task's line with the canonical line of updated.
func (f *TodoFile) Update(old, updated model.Task) (Result, error) {
	line := markdown.FormatTask(updated)
	return f.edit(func(lines *Lines) Result {
		idx := locate(*lines, old)
		if idx < 0 {
			f.Logger.Debug("task to update not found", "text", old.Text)
			return NotFound
		}
		lines.ReplaceAt(idx, line)
		f.Logger.Debug("task updated", "line", idx+1)
		return Applied
	})
}

// Move takes the task out of its section and appends it to the section for
// status. Entering done completes and stamps the task; any other
// destination clears both.
func (f *TodoFile) Move(task model.Task, status model.Status) (Result, error) {
	return f.edit(func(lines *Lines) Result {
		idx := locate(*lines, task)
		if idx < 0 {
			f.Logger.Debug("task to move not found", "text", task.Text)
			return NotFound
		}
		lines.DeleteAt(idx)

		moved := retarget(task, status, f.today())
		at := lines.insertInto(f.Grammar, status, markdown.FormatTask(moved), atTail)
		f.Logger.Debug("task moved", "from", task.Status, "to", status, "line", at+1)
		return Applied
	})
}

// Toggle completes an open task (move to done) or reopens a completed one
// (move to next).
func (f *TodoFile) Toggle(task model.Task) (Result, error) {
	if !task.Completed {
		return f.Move(task, model.StatusDone)
	}
	return f.Move(task, model.StatusNext)
}

// SetFocusNote rewrites the focus line. Documents without one are left
// alone.
func (f *TodoFile) SetFocusNote(note string) (Result, error) {
	return f.edit(func(lines *Lines) Result {
		for i, line := range *lines {
			if f.Grammar.IsFocusLine(line) {
				lines.ReplaceAt(i, f.Grammar.FormatFocus(note))
				return Applied
			}
		}
		f.Logger.Debug("no focus line in document")
		return NotFound
	})
}

func retarget(task model.Task, status model.Status, today string) model.Task {
	moved := task
	moved.Status = status
	moved.Completed = status == model.StatusDone
	moved.CompletedDate = ""
	if moved.Completed {
		moved.CompletedDate = today
	}
	moved.SourceLine = ""
	moved.Line = -1
	return moved
}

// locate finds the task's source line. The line index recorded at parse
// time wins when it still holds the same text, which keeps duplicate
// lines apart; otherwise the whole buffer is scanned with exact,
// trailing-space-insensitive and fully trimmed comparisons in turn.
func locate(lines Lines, task model.Task) int {
	src := task.SourceLine
	if strings.TrimSpace(src) == "" {
		return -1
	}

	if task.Line >= 0 && task.Line < len(lines) && strings.TrimSpace(lines[task.Line]) == strings.TrimSpace(src) {
		return task.Line
	}

	comparisons := []func(a, b string) bool{
		func(a, b string) bool { return a == b },
		func(a, b string) bool { return strings.TrimRight(a, " \t\r") == strings.TrimRight(b, " \t\r") },
		func(a, b string) bool { return strings.TrimSpace(a) == strings.TrimSpace(b) },
	}
	for _, same := range comparisons {
		for i, line := range lines {
			if same(line, src) {
				return i
			}
		}
	}
	return -1
}
