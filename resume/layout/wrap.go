package layout

import "strings"

// Wrap breaks text into lines no wider than maxWidth as reported by width.
// Explicit newlines start a new paragraph, words are packed greedily and are
// never split: a single word wider than maxWidth is placed on its own line.
// A paragraph that already fits is kept verbatim. Empty input yields a
// single empty line.
func Wrap(text string, maxWidth float64, width func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if width(para) <= maxWidth {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, w := range words[1:] {
			candidate := current + " " + w
			if width(candidate) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = w
		}
		lines = append(lines, current)
	}
	return lines
}
