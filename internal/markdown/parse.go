package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/nakachan-ing/mdtodo/internal/model"
)

var taskNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/nakachan-ing/mdtodo/task"))

// idGenerator hands out ids for one parse. Ids are derived from the
// status, the line content and how many identical lines came before it,
// so reloading an unchanged file yields the same ids.
type idGenerator struct {
	seen map[string]int
}

func newIDGenerator() *idGenerator {
	return &idGenerator{seen: make(map[string]int)}
}

func (g *idGenerator) next(status model.Status, line string) string {
	key := string(status) + "|" + strings.TrimSpace(line)
	n := g.seen[key]
	g.seen[key]++
	return taskID(key, n)
}

func taskID(key string, ordinal int) string {
	return uuid.NewSHA1(taskNamespace, []byte(fmt.Sprintf("%s|%d", key, ordinal))).String()
}

// Parse reads a whole document. It never fails: lines it does not
// understand are skipped.
func Parse(content string, g *Grammar) *model.Document {
	doc := &model.Document{
		Sections: []model.Section{},
		Raw:      content,
	}
	ids := newIDGenerator()
	current := -1
	subsection := ""

	for i, line := range strings.Split(content, "\n") {
		if g.IsFocusLine(line) {
			doc.FocusNote = focusValue(line)
			continue
		}

		if IsHeader(line) {
			// 認識できない見出しでも直前のセクションは閉じる
			current = -1
			subsection = ""
			if sk, ok := g.SectionFor(line); ok {
				doc.Sections = append(doc.Sections, model.Section{
					Status: sk.Status,
					Title:  HeaderTitle(line),
					Emoji:  sk.Emoji,
					Tasks:  []model.Task{},
				})
				current = len(doc.Sections) - 1
			}
			continue
		}

		if IsSubHeader(line) {
			subsection = HeaderTitle(line)
			continue
		}

		if current < 0 || !IsTaskLine(line) {
			continue
		}

		section := &doc.Sections[current]
		task, ok := ParseTask(line, section.Status, subsection, g)
		if !ok {
			continue
		}
		task.ID = ids.next(section.Status, line)
		task.Line = i
		section.Tasks = append(section.Tasks, task)
	}

	return doc
}

// ParseTask parses a single task line as if it sat in a section with the
// given status under the given subsection label.
func ParseTask(line string, status model.Status, subsection string, g *Grammar) (model.Task, bool) {
	trimmed := strings.TrimSpace(line)
	if !IsTaskLine(trimmed) {
		return model.Task{}, false
	}

	text := cleanText(trimmed)
	if text == "" {
		return model.Task{}, false
	}

	task := model.Task{
		ID:         taskID(string(status)+"|"+trimmed, 0),
		Text:       text,
		Completed:  status == model.StatusDone && checkedRe.MatchString(trimmed),
		Tags:       extractTags(trimmed),
		Deadline:   firstGroup(deadlineRe, trimmed),
		Duration:   firstGroup(durationRe, trimmed),
		Priority:   determinePriority(trimmed, subsection, g),
		Status:     status,
		WaitingFor: firstGroup(waitingRe, trimmed),
		SourceLine: line,
		Line:       -1,
	}
	if status == model.StatusDone {
		task.CompletedDate = firstGroup(stampRe, trimmed)
	}
	return task, true
}

func extractTags(line string) []string {
	tags := []string{}
	for _, m := range tagRe.FindAllStringSubmatch(line, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

func firstGroup(re *regexp.Regexp, line string) string {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func determinePriority(line, subsection string, g *Grammar) model.Priority {
	if strings.Contains(line, HighGlyph) || g.subsectionMatches(subsection, g.Keywords.Important) {
		return model.PriorityHigh
	}
	if strings.Contains(line, QuickGlyph) || g.subsectionMatches(subsection, g.Keywords.Quick) {
		return model.PriorityQuick
	}
	return model.PriorityNormal
}

func cleanText(line string) string {
	text := checkboxRe.ReplaceAllString(line, "")
	if text == line {
		text = bulletRe.ReplaceAllString(text, "")
	}
	text = strikeRe.ReplaceAllString(text, "$1")
	text = tagRe.ReplaceAllString(text, "")
	text = deadlineRe.ReplaceAllString(text, "")
	text = durationRe.ReplaceAllString(text, "")
	text = waitingRe.ReplaceAllString(text, "")
	text = stampRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, HighGlyph, "")
	text = strings.ReplaceAll(text, QuickGlyph, "")
	return strings.Join(strings.Fields(text), " ")
}

func focusValue(line string) string {
	m := focusRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	// _[...]_ is the placeholder written for an empty focus
	if m[1] == "[" && m[3] == "]" {
		return ""
	}
	return strings.TrimSpace(m[2])
}
