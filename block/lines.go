package block

// rawLine is one line of input with its terminator stripped and recorded
// separately, so the parser can preserve CR/LF/CRLF semantics for source
// positions without carrying the terminator bytes into leaf content.
type rawLine struct {
	bytes []byte
}

// splitLines splits input on LF, also stripping a preceding CR (so CRLF and
// bare CR are both treated as one line break), per spec §4.2. No synthetic
// trailing line is appended: if input does not end in a line terminator,
// the final rawLine simply has whatever trailing bytes remain.
func splitLines(input []byte) []rawLine {
	if len(input) == 0 {
		return nil
	}
	var lines []rawLine
	start := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '\n':
			end := i
			if end > start && input[end-1] == '\r' {
				end--
			}
			lines = append(lines, rawLine{bytes: input[start:end]})
			start = i + 1
		case '\r':
			// A bare CR not followed by LF also ends a line.
			if i+1 < len(input) && input[i+1] == '\n' {
				continue
			}
			lines = append(lines, rawLine{bytes: input[start:i]})
			start = i + 1
		}
	}
	if start < len(input) {
		lines = append(lines, rawLine{bytes: input[start:]})
	}
	return lines
}
