package store

import (
	"testing"

	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorder_WithinSection(t *testing.T) {
	f := newTestFile(t, "## NEXT\n- [ ] a\n- [ ] b\n- [ ] c\n")

	res, err := f.Reorder(findTask(t, load(t, f), "c"), Up)
	require.NoError(t, err)
	assert.Equal(t, ReorderResult{Kind: Swapped, Status: model.StatusNext}, res)
	assert.Equal(t, "## NEXT\n- [ ] a\n- [ ] c\n- [ ] b\n", readFile(t, f))

	res, err = f.Reorder(findTask(t, load(t, f), "a"), Down)
	require.NoError(t, err)
	assert.Equal(t, Swapped, res.Kind)
	assert.Equal(t, "## NEXT\n- [ ] c\n- [ ] a\n- [ ] b\n", readFile(t, f))
}

func TestReorder_SwapSkipsNonTaskLines(t *testing.T) {
	f := newTestFile(t, "## NEXT\n- [ ] a\n### later\n- [ ] b\n")

	res, err := f.Reorder(findTask(t, load(t, f), "b"), Up)
	require.NoError(t, err)
	assert.True(t, res.Moved())
	assert.Equal(t, "## NEXT\n- [ ] b\n### later\n- [ ] a\n", readFile(t, f))
}

func TestReorder_IgnoresLinesWithoutText(t *testing.T) {
	content := "## NEXT\n- [ ]\n- [ ] b\n"
	f := newTestFile(t, content)

	res, err := f.Reorder(findTask(t, load(t, f), "b"), Up)
	require.NoError(t, err)
	assert.Equal(t, NotMoved, res.Kind)
	assert.Equal(t, content, readFile(t, f))
}

func TestReorder_StrikesTextAfterLeadingTag(t *testing.T) {
	f := newTestFile(t, "## BLOCKED\n- [ ] `#home` Fix sink\n\n## DONE\n- [x] ~~Old~~ ✓ 01/10\n")

	res, err := f.Reorder(findTask(t, load(t, f), "Fix sink"), Down)
	require.NoError(t, err)
	assert.Equal(t, ReorderResult{Kind: SectionChanged, Status: model.StatusDone}, res)

	moved := findTask(t, load(t, f), "Fix sink")
	assert.Equal(t, "- [x] `#home` ~~Fix sink~~ ✓ 15/10", moved.SourceLine)
	assert.Equal(t, []string{"home"}, moved.Tags)
	assert.True(t, moved.Completed)
}

func TestReorder_CanonicalEdges(t *testing.T) {
	f := newTestFile(t, sampleDoc)

	res, err := f.Reorder(findTask(t, load(t, f), "Write report"), Up)
	require.NoError(t, err)
	assert.Equal(t, NotMoved, res.Kind)
	assert.False(t, res.Moved())

	res, err = f.Reorder(findTask(t, load(t, f), "Old task"), Down)
	require.NoError(t, err)
	assert.Equal(t, NotMoved, res.Kind)

	assert.Equal(t, sampleDoc, readFile(t, f))
}

func TestReorder_CrossingUpLandsAtTail(t *testing.T) {
	f := newTestFile(t, sampleDoc)

	res, err := f.Reorder(findTask(t, load(t, f), "Contract review"), Up)
	require.NoError(t, err)
	assert.Equal(t, ReorderResult{Kind: SectionChanged, Status: model.StatusNext}, res)

	doc := load(t, f)
	assert.Equal(t, []string{"Buy milk", "Contract review"}, sectionTexts(t, doc, model.StatusNext))
	assert.Empty(t, sectionTexts(t, doc, model.StatusWaiting))
	// no transform between two open sections
	assert.Equal(t, "- [ ] Contract review → _Legal_", findTask(t, doc, "Contract review").SourceLine)
}

func TestReorder_CrossingDownLandsAtHead(t *testing.T) {
	f := newTestFile(t, sampleDoc)

	res, err := f.Reorder(findTask(t, load(t, f), "Write report"), Down)
	require.NoError(t, err)
	assert.Equal(t, ReorderResult{Kind: SectionChanged, Status: model.StatusNext}, res)
	assert.Equal(t, []string{"Write report", "Buy milk"}, sectionTexts(t, load(t, f), model.StatusNext))
}

func TestReorder_SkipsAbsentSections(t *testing.T) {
	content := "## ⏳ WAITING\n" +
		"\n" +
		"- [ ] Contract review → _Legal_\n" +
		"\n" +
		"## 🔥 DOING\n" +
		"\n" +
		"- [ ] Write report\n"
	f := newTestFile(t, content)

	res, err := f.Reorder(findTask(t, load(t, f), "Contract review"), Up)
	require.NoError(t, err)
	assert.Equal(t, ReorderResult{Kind: SectionChanged, Status: model.StatusDoing}, res)

	doc := load(t, f)
	assert.Equal(t, []string{"Write report", "Contract review"}, sectionTexts(t, doc, model.StatusDoing))
	moved := findTask(t, doc, "Contract review")
	assert.False(t, moved.Completed)
	assert.Empty(t, moved.CompletedDate)
	assert.Equal(t, "- [ ] Contract review → _Legal_", moved.SourceLine)
}

func TestReorder_IntoAndOutOfDone(t *testing.T) {
	f := newTestFile(t, sampleDoc)

	res, err := f.Reorder(findTask(t, load(t, f), "Learn Go"), Down)
	require.NoError(t, err)
	assert.Equal(t, ReorderResult{Kind: SectionChanged, Status: model.StatusDone}, res)

	doc := load(t, f)
	assert.Equal(t, []string{"Learn Go", "Old task"}, sectionTexts(t, doc, model.StatusDone))
	entered := findTask(t, doc, "Learn Go")
	assert.True(t, entered.Completed)
	assert.Equal(t, "15/10", entered.CompletedDate)
	assert.Equal(t, "- [x] ~~Learn Go~~ ✓ 15/10", entered.SourceLine)

	res, err = f.Reorder(entered, Up)
	require.NoError(t, err)
	assert.Equal(t, ReorderResult{Kind: SectionChanged, Status: model.StatusIdeas}, res)

	left := findTask(t, load(t, f), "Learn Go")
	assert.False(t, left.Completed)
	assert.Empty(t, left.CompletedDate)
	assert.Equal(t, "- [ ] Learn Go", left.SourceLine)
	assert.Equal(t, model.StatusIdeas, left.Status)
}

func TestReorder_NotFound(t *testing.T) {
	f := newTestFile(t, sampleDoc)
	ghost := model.Task{Text: "Ghost", SourceLine: "- [ ] Ghost", Line: 10}

	res, err := f.Reorder(ghost, Up)
	require.NoError(t, err)
	assert.Equal(t, NotMoved, res.Kind)
	assert.Equal(t, sampleDoc, readFile(t, f))
}

func TestTransformLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		from, to model.Status
		want     string
	}{
		{
			name: "between open sections",
			line: "- [ ] Call bank `#work` ⚡",
			from: model.StatusNext, to: model.StatusDoing,
			want: "- [ ] Call bank `#work` ⚡",
		},
		{
			name: "entering done",
			line: "- [ ] Call bank `#work`",
			from: model.StatusNext, to: model.StatusDone,
			want: "- [x] ~~Call bank~~ `#work` ✓ 15/10",
		},
		{
			name: "entering done with a leading tag",
			line: "- [ ] `#home` Fix sink",
			from: model.StatusWaiting, to: model.StatusDone,
			want: "- [x] `#home` ~~Fix sink~~ ✓ 15/10",
		},
		{
			name: "entering done keeps an existing stamp",
			line: "- [ ] Pay rent ✓ 02/10",
			from: model.StatusIdeas, to: model.StatusDone,
			want: "- [x] ~~Pay rent~~ ✓ 02/10",
		},
		{
			name: "leaving done",
			line: "- [x] ~~Pay rent~~ `#home` ✓ 01/10",
			from: model.StatusDone, to: model.StatusIdeas,
			want: "- [ ] Pay rent `#home`",
		},
		{
			name: "done to done",
			line: "- [x] ~~Pay rent~~ ✓ 01/10",
			from: model.StatusDone, to: model.StatusDone,
			want: "- [x] ~~Pay rent~~ ✓ 01/10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransformLine(tt.line, tt.from, tt.to, "15/10"))
		})
	}
}
