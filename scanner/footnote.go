package scanner

import "regexp"

var reFootnoteDef = regexp.MustCompile(`^\[\^([^\]\s]+)\]:(?:[ \t]+(.*))?$`)

// FootnoteDefinitionStart recognises `[^label]:` at the start of a line.
// Returns the raw (un-normalised) label and the byte offset where trailing
// content, if any, begins.
func FootnoteDefinitionStart(line []byte) (label string, contentStart int, ok bool) {
	m := reFootnoteDef.FindSubmatchIndex(line)
	if m == nil {
		return "", 0, false
	}
	label = string(line[m[2]:m[3]])
	if m[4] < 0 {
		return label, m[1], true
	}
	return label, m[4], true
}

var reFootnoteRef = regexp.MustCompile(`^\[\^([^\]\s]+)\]`)

// FootnoteReferenceStart recognises a `[^label]` footnote reference inline.
func FootnoteReferenceStart(s []byte) (label string, length int, ok bool) {
	m := reFootnoteRef.FindSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	return string(m[1]), len(m[0]), true
}
