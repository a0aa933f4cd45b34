package scanner

import "regexp"

var reSetextUnderline = regexp.MustCompile(`^=+[ \t]*$|^-+[ \t]*$`)

// ATXHeadingStart recognises an ATX heading start: 1-6 '#' followed by a
// space/tab or end of line. Returns the heading level and the byte offset
// in line where the heading's raw content begins (after the opening run
// and its required whitespace); content is not yet stripped of a trailing
// closing run of '#'.
func ATXHeadingStart(line []byte) (level int, contentStart int, ok bool) {
	trimmed := line
	i := 0
	for i < len(trimmed) && trimmed[i] == '#' {
		i++
	}
	if i == 0 || i > 6 {
		return 0, 0, false
	}
	if i == len(trimmed) {
		return i, i, true
	}
	if trimmed[i] != ' ' && trimmed[i] != '\t' {
		return 0, 0, false
	}
	j := SkipSpacesTabs(trimmed, i)
	return i, j, true
}

// ThematicBreak reports whether line (already stripped of up to 3 leading
// spaces of indentation) is a thematic break: a run of 3 or more matching
// '*', '-' or '_' characters, optionally interspersed with spaces/tabs,
// alone on the line.
func ThematicBreak(line []byte) bool {
	if len(line) == 0 {
		return false
	}
	var marker byte
	switch line[0] {
	case '*', '-', '_':
		marker = line[0]
	default:
		return false
	}
	count := 0
	for _, b := range line {
		switch {
		case b == marker:
			count++
		case b == ' ' || b == '\t':
		default:
			return false
		}
	}
	return count >= 3
}

// SetextUnderline recognises a setext heading underline: a run of '=' (level
// 1) or '-' (level 2), optionally followed by trailing spaces/tabs.
func SetextUnderline(line []byte) (level int, ok bool) {
	if len(line) == 0 {
		return 0, false
	}
	if !reSetextUnderline.Match(line) {
		return 0, false
	}
	if line[0] == '=' {
		return 1, true
	}
	return 2, true
}

// BlockQuoteStart reports whether line begins a block-quote continuation
// or opening: a '>' optionally followed by one space or tab. Returns the
// byte offset after the marker (and its one optional space) is consumed.
func BlockQuoteStart(line []byte) (contentStart int, ok bool) {
	if len(line) == 0 || line[0] != '>' {
		return 0, false
	}
	if len(line) > 1 && (line[1] == ' ' || line[1] == '\t') {
		if line[1] == '\t' {
			return 2, true
		}
		return 2, true
	}
	return 1, true
}
