package scanner

import "bytes"

// FrontMatterDelimiter reports whether line is exactly the given
// delimiter string (trimmed of trailing whitespace), used to recognise
// both the opening and closing fence of a front-matter block.
func FrontMatterDelimiter(line []byte, delimiter string) bool {
	return string(bytes.TrimRight(line, " \t\r")) == delimiter
}
