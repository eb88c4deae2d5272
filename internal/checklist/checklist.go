// Package checklist reads and edits markdown task lists ("- [ ] text") in note content.
package checklist

import (
	"regexp"
	"strings"
)

var (
	// groups: indent, state, text
	boxRe = regexp.MustCompile(`(?m)^([ \t]*)- \[([ xX])\] (.+)$`)

	fencedRe = regexp.MustCompile("(?s)```.*?```")
	inlineRe = regexp.MustCompile("`[^`]+`")
)

// Box is one checkbox line.
type Box struct {
	Indent  string
	Checked bool
	Text    string
}

// Stats summarises a checklist.
type Stats struct {
	Total     int
	Completed int
}

// Done reports whether every box is checked. Content without boxes is never done.
func (s Stats) Done() bool {
	return s.Total > 0 && s.Completed == s.Total
}

// Parse returns the boxes in content, ignoring anything inside code spans or fences.
func Parse(content string) []Box {
	visible := inlineRe.ReplaceAllString(fencedRe.ReplaceAllString(content, ""), "")

	matches := boxRe.FindAllStringSubmatch(visible, -1)
	boxes := make([]Box, 0, len(matches))
	for _, m := range matches {
		boxes = append(boxes, Box{
			Indent:  m[1],
			Checked: m[2] != " ",
			Text:    strings.TrimSpace(m[3]),
		})
	}
	return boxes
}

func Summarize(content string) Stats {
	var s Stats
	for _, b := range Parse(content) {
		s.Total++
		if b.Checked {
			s.Completed++
		}
	}
	return s
}

// SetChecked sets the state of every box whose text contains match
// (case-insensitive) and returns the new content and how many boxes matched.
func SetChecked(content, match string, checked bool) (string, int) {
	needle := strings.ToLower(strings.TrimSpace(match))
	if needle == "" {
		return content, 0
	}

	mark := " "
	if checked {
		mark = "x"
	}

	lines := strings.Split(content, "\n")
	count := 0
	inFence := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := boxRe.FindStringSubmatch(line)
		if m == nil || !strings.Contains(strings.ToLower(m[3]), needle) {
			continue
		}
		lines[i] = m[1] + "- [" + mark + "] " + m[3]
		count++
	}
	return strings.Join(lines, "\n"), count
}
