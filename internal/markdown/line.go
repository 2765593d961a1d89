package markdown

import (
	"regexp"
	"strings"
)

// Line-level edits used when a task crosses into or out of the done
// section. They rewrite only the parts they own and leave the rest of
// the line byte-for-byte intact.

var (
	boxPrefixRe      = regexp.MustCompile(`^(\s*-\s*)\[[ xX]\]`)
	bulletPrefixRe   = regexp.MustCompile(`^(\s*-)\s*`)
	bodyStartRe      = regexp.MustCompile(`^\s*-\s*(\[[ xX]\]\s*)?`)
	decorationRe     = regexp.MustCompile("`[^`]*`|" + WaitingArrow + `\s*_.+?_(?:\s|$)|` + HighGlyph + "|" + QuickGlyph + "|" + StampGlyph + `\s*\d{1,2}/\d{1,2}`)
	lazyStrikeRe     = regexp.MustCompile(`~~(.+?)~~`)
	stampWithSpaceRe = regexp.MustCompile(`\s*` + StampGlyph + `\s*\d{1,2}/\d{1,2}`)
)

// SetCheckbox forces the checkbox state, adding a box to bare list items.
func SetCheckbox(line string, checked bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	if loc := boxPrefixRe.FindStringSubmatchIndex(line); loc != nil {
		return line[:loc[3]] + box + line[loc[1]:]
	}
	if loc := bulletPrefixRe.FindStringSubmatchIndex(line); loc != nil {
		return line[:loc[3]] + " " + box + " " + line[loc[1]:]
	}
	return line
}

// Strike wraps every text run of the task in ~~, leaving the checkbox and
// decorations (code spans, waiting annotation, glyphs, stamp) outside.
// Lines that already carry a strikethrough are returned unchanged.
func Strike(line string) string {
	loc := bodyStartRe.FindStringIndex(line)
	if loc == nil || lazyStrikeRe.MatchString(line) {
		return line
	}
	prefix, rest := line[:loc[1]], line[loc[1]:]

	var b strings.Builder
	b.WriteString(prefix)
	last := 0
	for _, d := range decorationRe.FindAllStringIndex(rest, -1) {
		b.WriteString(strikeRun(rest[last:d[0]]))
		b.WriteString(rest[d[0]:d[1]])
		last = d[1]
	}
	b.WriteString(strikeRun(rest[last:]))
	return b.String()
}

func strikeRun(run string) string {
	core := strings.TrimSpace(run)
	if core == "" {
		return run
	}
	lead := strings.Index(run, core)
	return run[:lead] + "~~" + core + "~~" + run[lead+len(core):]
}

func Unstrike(line string) string {
	return lazyStrikeRe.ReplaceAllString(line, "$1")
}

func HasStamp(line string) bool {
	return stampRe.MatchString(line)
}

// AddStamp appends a completion stamp such as "✓ 15/10".
func AddStamp(line, date string) string {
	return strings.TrimRight(line, " \t") + " " + StampGlyph + " " + date
}

func StripStamp(line string) string {
	return stampWithSpaceRe.ReplaceAllString(line, "")
}
