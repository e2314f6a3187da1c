package ui

import "strings"

// Wrap breaks text into lines of at most cols characters, splitting on
// spaces and keeping explicit newlines. Words longer than cols are cut.
func Wrap(text string, cols int) []string {
	if cols <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var line []rune
		for _, w := range words {
			word := []rune(w)
			for len(word) > cols {
				if len(line) > 0 {
					lines = append(lines, string(line))
					line = line[:0]
				}
				lines = append(lines, string(word[:cols]))
				word = word[cols:]
			}
			switch {
			case len(line) == 0:
				line = append(line, word...)
			case len(line)+1+len(word) <= cols:
				line = append(append(line, ' '), word...)
			default:
				lines = append(lines, string(line))
				line = append(line[:0], word...)
			}
		}
		if len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}
