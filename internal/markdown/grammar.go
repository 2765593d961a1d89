package markdown

import (
	"regexp"
	"strings"
)

const (
	HeaderMarker    = "## "
	SubHeaderMarker = "### "

	HighGlyph     = "⚡"
	QuickGlyph    = "🚀"
	DeadlineGlyph = "📅"
	StampGlyph    = "✓"
	WaitingArrow  = "→"
)

var (
	checkboxRe  = regexp.MustCompile(`(?i)^-\s*\[[ x]\]\s*`)
	checkedRe   = regexp.MustCompile(`(?i)^-\s*\[x\]`)
	bulletRe    = regexp.MustCompile(`^-\s*`)
	separatorRe = regexp.MustCompile(`^-+$`)
	strikeRe    = regexp.MustCompile(`~~([^~]+)~~`)
	tagRe       = regexp.MustCompile("`#([^`]+)`")
	deadlineRe  = regexp.MustCompile("`" + DeadlineGlyph + `\s*([^` + "`" + `]+)` + "`")
	durationRe  = regexp.MustCompile("`~([^`]+)`")
	// the closing underscore must end a word so names like Ana_Maria survive
	waitingRe   = regexp.MustCompile(WaitingArrow + `\s*_(.+?)_(?:\s|$)`)
	stampRe     = regexp.MustCompile(StampGlyph + `\s*(\d{1,2}/\d{1,2})`)
	focusRe     = regexp.MustCompile(`_(\[)?([^\]_]*)(\])?_`)
)

func IsHeader(line string) bool {
	return strings.HasPrefix(line, HeaderMarker)
}

func IsSubHeader(line string) bool {
	return strings.HasPrefix(line, SubHeaderMarker)
}

// HeaderTitle strips the "##" marker from a top-level header.
func HeaderTitle(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}

// IsTaskLine reports whether line is a list item that is not a dash separator.
func IsTaskLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "-") && !separatorRe.MatchString(trimmed)
}

// HasTaskText reports whether line is a task line that keeps some text
// once its markers and decorations are removed. A bare "- [ ]" does not.
func HasTaskText(line string) bool {
	trimmed := strings.TrimSpace(line)
	return IsTaskLine(trimmed) && cleanText(trimmed) != ""
}
