package model

type Status string // doing, next, waiting, blocked, ideas, done

const (
	StatusDoing   Status = "doing"
	StatusNext    Status = "next"
	StatusWaiting Status = "waiting"
	StatusBlocked Status = "blocked"
	StatusIdeas   Status = "ideas"
	StatusDone    Status = "done"
)

// StatusOrder is the canonical section order used by reorder.
var StatusOrder = []Status{
	StatusDoing,
	StatusNext,
	StatusWaiting,
	StatusBlocked,
	StatusIdeas,
	StatusDone,
}

// Index returns the position of s in StatusOrder, or -1.
func (s Status) Index() int {
	for i, st := range StatusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) Valid() bool {
	return s.Index() >= 0
}

// ParseStatus accepts the canonical identifiers only.
func ParseStatus(value string) (Status, bool) {
	s := Status(value)
	return s, s.Valid()
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityQuick  Priority = "quick"
)

type Task struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Completed     bool     `json:"completed"`
	Tags          []string `json:"tags"`
	Deadline      string   `json:"deadline,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Priority      Priority `json:"priority"`
	Status        Status   `json:"status"`
	WaitingFor    string   `json:"waiting_for,omitempty"`
	CompletedDate string   `json:"completed_date,omitempty"` // dd/mm
	SourceLine    string   `json:"source_line"`
	Line          int      `json:"line"` // -1 when not parsed from a file
}

// NewTask builds a task that has not been written yet.
func NewTask(text string, status Status) Task {
	return Task{
		Text:     text,
		Tags:     []string{},
		Priority: PriorityNormal,
		Status:   status,
		Line:     -1,
	}
}

type Section struct {
	Status Status `json:"status"`
	Title  string `json:"title"`
	Emoji  string `json:"emoji"`
	Tasks  []Task `json:"tasks"`
}

type Document struct {
	FocusNote string    `json:"focus_note"`
	Sections  []Section `json:"sections"`
	Raw       string    `json:"-"`
}

// Section returns the first section with the given status.
func (d *Document) Section(status Status) (*Section, bool) {
	for i := range d.Sections {
		if d.Sections[i].Status == status {
			return &d.Sections[i], true
		}
	}
	return nil, false
}

// Tasks returns every task in document order.
func (d *Document) Tasks() []Task {
	var tasks []Task
	for _, section := range d.Sections {
		tasks = append(tasks, section.Tasks...)
	}
	return tasks
}
