package scanner

// TaskListMarker recognises a GFM task-list marker at the start of a list
// item's content: optional whitespace, '[', a marker character, ']', then
// a space/tab or end of line. relaxed allows any non-whitespace marker
// character instead of only the standard set (space, 'x', 'X').
func TaskListMarker(s []byte, relaxed bool) (checked bool, markerChar byte, length int, ok bool) {
	i := SkipSpacesTabs(s, 0)
	if i+2 >= len(s) || s[i] != '[' {
		return false, 0, 0, false
	}
	c := s[i+1]
	if s[i+2] != ']' {
		return false, 0, 0, false
	}
	if !relaxed {
		switch c {
		case ' ', 'x', 'X':
		default:
			return false, 0, 0, false
		}
	} else if IsASCIIWhitespace(c) {
		return false, 0, 0, false
	}
	end := i + 3
	if end < len(s) && s[end] != ' ' && s[end] != '\t' {
		return false, 0, 0, false
	}
	checked = c != ' '
	return checked, c, end, true
}
