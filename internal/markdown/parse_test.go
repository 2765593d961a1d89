package markdown

import (
	"testing"

	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parseFixture = "# 📋 TASKS\n" +
	"\n" +
	"> **Today's focus:** _Ship the release_\n" +
	"\n" +
	"## 🔥 DOING (max. 3)\n" +
	"\n" +
	"- [ ] Write changelog `#work` `📅 20/10` `~1h` ⚡\n" +
	"- [ ] Fix   flaky    test\n" +
	"\n" +
	"## ⏳ WAITING\n" +
	"\n" +
	"- [ ] Contract review → _Legal_ `#work`\n" +
	"\n" +
	"## Notes\n" +
	"\n" +
	"- not a task in any section\n" +
	"\n" +
	"## ✅ DONE\n" +
	"\n" +
	"- [x] ~~Pay rent~~ ✓ 01/10\n" +
	"- [ ] Unchecked in done\n"

func TestParse_Document(t *testing.T) {
	doc := Parse(parseFixture, DefaultGrammar())

	assert.Equal(t, "Ship the release", doc.FocusNote)
	assert.Equal(t, parseFixture, doc.Raw)
	require.Len(t, doc.Sections, 3)

	doing := doc.Sections[0]
	assert.Equal(t, model.StatusDoing, doing.Status)
	assert.Equal(t, "🔥 DOING (max. 3)", doing.Title)
	assert.Equal(t, "🔥", doing.Emoji)
	require.Len(t, doing.Tasks, 2)

	first := doing.Tasks[0]
	assert.Equal(t, "Write changelog", first.Text)
	assert.Equal(t, []string{"work"}, first.Tags)
	assert.Equal(t, "20/10", first.Deadline)
	assert.Equal(t, "1h", first.Duration)
	assert.Equal(t, model.PriorityHigh, first.Priority)
	assert.False(t, first.Completed)
	assert.Equal(t, 6, first.Line)
	assert.Equal(t, "- [ ] Write changelog `#work` `📅 20/10` `~1h` ⚡", first.SourceLine)

	assert.Equal(t, "Fix flaky test", doing.Tasks[1].Text)
	assert.Equal(t, model.PriorityNormal, doing.Tasks[1].Priority)

	waiting := doc.Sections[1]
	assert.Equal(t, model.StatusWaiting, waiting.Status)
	require.Len(t, waiting.Tasks, 1)
	assert.Equal(t, "Contract review", waiting.Tasks[0].Text)
	assert.Equal(t, "Legal", waiting.Tasks[0].WaitingFor)
	assert.Equal(t, []string{"work"}, waiting.Tasks[0].Tags)

	done := doc.Sections[2]
	assert.Equal(t, model.StatusDone, done.Status)
	require.Len(t, done.Tasks, 2)
	assert.Equal(t, "Pay rent", done.Tasks[0].Text)
	assert.True(t, done.Tasks[0].Completed)
	assert.Equal(t, "01/10", done.Tasks[0].CompletedDate)
	assert.False(t, done.Tasks[1].Completed)
	assert.Equal(t, 20, done.Tasks[1].Line)
}

func TestParse_UnrecognizedHeaderClosesSection(t *testing.T) {
	doc := Parse(parseFixture, DefaultGrammar())
	for _, task := range doc.Tasks() {
		assert.NotEqual(t, "not a task in any section", task.Text)
	}
}

func TestParse_SubsectionPriority(t *testing.T) {
	content := "## 📌 NEXT\n" +
		"### High priority\n" +
		"- [ ] Call bank\n" +
		"### Quick wins\n" +
		"- [ ] Reply email\n" +
		"## 💡 IDEAS\n" +
		"- [ ] Learn Go\n"

	doc := Parse(content, DefaultGrammar())
	require.Len(t, doc.Sections, 2)

	next := doc.Sections[0].Tasks
	require.Len(t, next, 2)
	assert.Equal(t, model.PriorityHigh, next[0].Priority)
	assert.Equal(t, model.PriorityQuick, next[1].Priority)

	// a new top-level header resets the subsection label
	ideas := doc.Sections[1].Tasks
	require.Len(t, ideas, 1)
	assert.Equal(t, model.PriorityNormal, ideas[0].Priority)
}

func TestParse_SkipsNonTasks(t *testing.T) {
	content := "## 📌 NEXT\n" +
		"---\n" +
		"- [ ]\n" +
		"- [ ]    \n" +
		"plain paragraph\n" +
		"- [ ] Real task\n"

	doc := Parse(content, DefaultGrammar())
	require.Len(t, doc.Sections, 1)
	require.Len(t, doc.Sections[0].Tasks, 1)
	assert.Equal(t, "Real task", doc.Sections[0].Tasks[0].Text)
}

func TestParse_AbsentSectionsAreNotCreated(t *testing.T) {
	doc := Parse("## 📌 NEXT\n- [ ] Buy milk\n", DefaultGrammar())
	require.Len(t, doc.Sections, 1)
	_, ok := doc.Section(model.StatusDone)
	assert.False(t, ok)
}

func TestParse_FocusPlaceholderIsEmpty(t *testing.T) {
	g := DefaultGrammar()
	doc := Parse(g.FormatFocus("")+"\n", g)
	assert.Equal(t, "", doc.FocusNote)

	doc = Parse("> **Today's focus:** _first_\n> **Today's focus:** _second_\n", g)
	assert.Equal(t, "second", doc.FocusNote)
}

func TestParse_IDs(t *testing.T) {
	content := "## 📌 NEXT\n- [ ] Buy milk\n- [ ] Buy milk\n"

	a := Parse(content, DefaultGrammar()).Tasks()
	b := Parse(content, DefaultGrammar()).Tasks()
	require.Len(t, a, 2)

	assert.NotEqual(t, a[0].ID, a[1].ID)
	assert.Equal(t, a[0].ID, b[0].ID)
	assert.Equal(t, a[1].ID, b[1].ID)
}

func TestParseTask_CheckedOutsideDoneIsOpen(t *testing.T) {
	task, ok := ParseTask("- [X] Something", model.StatusNext, "", DefaultGrammar())
	require.True(t, ok)
	assert.False(t, task.Completed)
	assert.Equal(t, "", task.CompletedDate)

	task, ok = ParseTask("- [X] Something ✓ 3/9", model.StatusDone, "", DefaultGrammar())
	require.True(t, ok)
	assert.True(t, task.Completed)
	assert.Equal(t, "3/9", task.CompletedDate)
}

func TestParse_PortugueseKeywords(t *testing.T) {
	kw, err := KeywordsFor("pt")
	require.NoError(t, err)
	g := NewGrammar(kw, "pt")

	content := "> **Foco de hoje:** _Revisar contrato_\n" +
		"## 📌 PRÓXIMAS\n" +
		"### Alta prioridade\n" +
		"- [ ] Ligar para o banco\n" +
		"## concluídas\n" +
		"- [x] ~~Pagar aluguel~~ ✓ 01/10\n"

	doc := Parse(content, g)
	assert.Equal(t, "Revisar contrato", doc.FocusNote)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, model.StatusNext, doc.Sections[0].Status)
	assert.Equal(t, model.PriorityHigh, doc.Sections[0].Tasks[0].Priority)
	assert.Equal(t, model.StatusDone, doc.Sections[1].Status)
	assert.True(t, doc.Sections[1].Tasks[0].Completed)
}

func TestParseTask_TextAndWaitingEdges(t *testing.T) {
	g := DefaultGrammar()

	tests := []struct {
		name       string
		line       string
		status     model.Status
		text       string
		waitingFor string
	}{
		{name: "leading dash after checkbox", line: "- [ ] -5 degrees outside", status: model.StatusNext, text: "-5 degrees outside"},
		{name: "bare bullet", line: "- plain item", status: model.StatusNext, text: "plain item"},
		{name: "underscore inside name", line: "- [ ] call → _Ana_Maria_", status: model.StatusWaiting, text: "call", waitingFor: "Ana_Maria"},
		{name: "name followed by tag", line: "- [ ] call → _Ana_ `#family`", status: model.StatusWaiting, text: "call", waitingFor: "Ana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, ok := ParseTask(tt.line, tt.status, "", g)
			require.True(t, ok)
			assert.Equal(t, tt.text, task.Text)
			assert.Equal(t, tt.waitingFor, task.WaitingFor)
		})
	}
}

func TestHasTaskText(t *testing.T) {
	assert.True(t, HasTaskText("- [ ] b"))
	assert.True(t, HasTaskText("  - plain"))
	assert.False(t, HasTaskText("- [ ]"))
	assert.False(t, HasTaskText("- [x] `#tag` ⚡"))
	assert.False(t, HasTaskText("---"))
}
