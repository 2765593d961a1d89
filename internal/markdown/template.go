package markdown

import (
	"strings"

	"github.com/nakachan-ing/mdtodo/internal/model"
)

// DefaultTemplate is the document written by `mdtodo init` when no todo
// file exists yet.
func DefaultTemplate(g *Grammar) string {
	samples := map[model.Status][]string{
		model.StatusDoing: {"- [ ] My first task `#personal`"},
		model.StatusNext:  {"- [ ] Example task `#work` `~1h`"},
		model.StatusIdeas: {"- [ ] Future idea"},
	}

	var b strings.Builder
	b.WriteString("# 📋 TASKS\n\n")
	b.WriteString(g.FormatFocus("") + "\n")

	for _, status := range model.StatusOrder {
		b.WriteString("\n" + HeaderMarker + g.sectionHeading(status) + "\n")
		if lines, ok := samples[status]; ok {
			b.WriteString("\n" + strings.Join(lines, "\n") + "\n")
		}
	}
	return b.String()
}

func (g *Grammar) sectionHeading(status model.Status) string {
	for _, sk := range g.Keywords.Sections {
		if sk.Status != status {
			continue
		}
		heading := sk.Keyword
		if sk.Emoji != "" {
			heading = sk.Emoji + " " + heading
		}
		if status == model.StatusDoing {
			heading += " (max. 3)"
		}
		return heading
	}
	return string(status)
}
