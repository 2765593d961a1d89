package markdown

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nakachan-ing/mdtodo/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var presets = map[string]model.Keywords{
	"en": {
		Sections: []model.SectionKeyword{
			{Status: model.StatusDoing, Keyword: "DOING", Emoji: "🔥"},
			{Status: model.StatusNext, Keyword: "NEXT", Emoji: "📌"},
			{Status: model.StatusWaiting, Keyword: "WAITING", Emoji: "⏳"},
			{Status: model.StatusBlocked, Keyword: "BLOCKED", Emoji: "🚧"},
			{Status: model.StatusIdeas, Keyword: "IDEAS", Emoji: "💡"},
			{Status: model.StatusDone, Keyword: "DONE", Emoji: "✅"},
		},
		FocusMarker:      "Today's focus",
		FocusPlaceholder: "write 1-3 main things for the day",
		Important:        "high priority",
		Quick:            "quick",
	},
	"pt": {
		Sections: []model.SectionKeyword{
			{Status: model.StatusDoing, Keyword: "FAZENDO", Emoji: "🔥"},
			{Status: model.StatusNext, Keyword: "PRÓXIMAS", Emoji: "📌"},
			{Status: model.StatusWaiting, Keyword: "ESPERANDO", Emoji: "⏳"},
			{Status: model.StatusBlocked, Keyword: "BLOQUEADAS", Emoji: "🚧"},
			{Status: model.StatusIdeas, Keyword: "IDEIAS", Emoji: "💡"},
			{Status: model.StatusDone, Keyword: "CONCLUÍDAS", Emoji: "✅"},
		},
		FocusMarker:      "Foco de hoje",
		FocusPlaceholder: "escreva 1-3 coisas principais do dia",
		Important:        "alta prioridade",
		Quick:            "rápidas",
	},
}

// KeywordsFor returns the built-in keyword table for a locale.
func KeywordsFor(locale string) (model.Keywords, error) {
	kw, ok := presets[strings.ToLower(locale)]
	if !ok {
		return model.Keywords{}, fmt.Errorf("❌ Unsupported locale: %q", locale)
	}
	return kw, nil
}

// ValidateKeywords checks a user supplied table: every status must be
// reachable and the focus marker must be set.
func ValidateKeywords(kw model.Keywords) error {
	seen := make(map[model.Status]bool)
	for _, sk := range kw.Sections {
		if !sk.Status.Valid() {
			return fmt.Errorf("❌ Unknown status in keyword table: %q", sk.Status)
		}
		if strings.TrimSpace(sk.Keyword) == "" {
			return fmt.Errorf("❌ Empty keyword for status %q", sk.Status)
		}
		seen[sk.Status] = true
	}
	for _, status := range model.StatusOrder {
		if !seen[status] {
			return fmt.Errorf("❌ No keyword for status %q", status)
		}
	}
	if strings.TrimSpace(kw.FocusMarker) == "" {
		return fmt.Errorf("❌ Focus marker is empty")
	}
	return nil
}

// Grammar binds a keyword table to the casing rules of its locale.
type Grammar struct {
	Keywords model.Keywords
	tag      language.Tag
}

func NewGrammar(kw model.Keywords, locale string) *Grammar {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Grammar{Keywords: kw, tag: tag}
}

// DefaultGrammar is the English grammar.
func DefaultGrammar() *Grammar {
	return NewGrammar(presets["en"], "en")
}

// GrammarFromConfig prefers an explicit keyword table over the locale preset.
func GrammarFromConfig(cfg model.Config) (*Grammar, error) {
	if cfg.Keywords != nil {
		if err := ValidateKeywords(*cfg.Keywords); err != nil {
			return nil, err
		}
		return NewGrammar(*cfg.Keywords, cfg.Locale), nil
	}
	kw, err := KeywordsFor(cfg.Locale)
	if err != nil {
		return nil, err
	}
	return NewGrammar(kw, cfg.Locale), nil
}

func (g *Grammar) upper(s string) string {
	return cases.Upper(g.tag).String(s)
}

func (g *Grammar) lower(s string) string {
	return cases.Lower(g.tag).String(s)
}

// words normalizes s into upper-cased words separated by single spaces,
// padded so that whole-word containment is a plain substring check.
func (g *Grammar) words(s string) string {
	fields := strings.FieldsFunc(g.upper(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r)
	})
	return " " + strings.Join(fields, " ") + " "
}

// SectionFor matches a top-level header against the keyword table.
// The table is checked in order and the first whole-word match wins.
func (g *Grammar) SectionFor(header string) (model.SectionKeyword, bool) {
	if !IsHeader(header) {
		return model.SectionKeyword{}, false
	}
	title := g.words(HeaderTitle(header))
	for _, sk := range g.Keywords.Sections {
		if strings.Contains(title, g.words(sk.Keyword)) {
			return sk, true
		}
	}
	return model.SectionKeyword{}, false
}

// Emoji returns the display glyph configured for a status.
func (g *Grammar) Emoji(status model.Status) string {
	for _, sk := range g.Keywords.Sections {
		if sk.Status == status {
			return sk.Emoji
		}
	}
	return ""
}

func (g *Grammar) focusToken() string {
	return "**" + g.Keywords.FocusMarker + ":**"
}

func (g *Grammar) IsFocusLine(line string) bool {
	return strings.Contains(line, g.focusToken())
}

func (g *Grammar) subsectionMatches(subsection, keyword string) bool {
	if keyword == "" || subsection == "" {
		return false
	}
	return strings.Contains(g.lower(subsection), g.lower(keyword))
}
