package layout

import (
	"strings"
	"unicode/utf8"
)

// Helvetica glyph widths in thousandths of an em, ASCII 32..126.
// Runes outside the table fall back to the digit width.
var helveticaWidths = [95]int{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 584, 584, 584, 556,
	1015, 667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 278, 278, 278, 469, 556,
	333, 556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, 556, 556,
	556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
}

const ptToMM = 25.4 / 72

// StringWidth measures a text run at the given point size and returns
// millimetres.
func StringWidth(s string, size float64) float64 {
	var units int
	for _, r := range s {
		if r >= 32 && r <= 126 {
			units += helveticaWidths[r-32]
		} else {
			units += 556
		}
	}
	return float64(units) / 1000 * size * ptToMM
}

// WrapText breaks a string into lines no wider than maxWidth mm at
// the given point size. Words longer than a full line are split on
// character boundaries. An empty string yields no lines.
func WrapText(s string, maxWidth, size float64) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		for StringWidth(word, size) > maxWidth {
			// Flush the current line, then hard-split the word.
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			cut := splitPoint(word, maxWidth, size)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		switch {
		case line == "":
			line = word
		case StringWidth(line+" "+word, size) <= maxWidth:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitPoint finds the longest prefix of word that fits in maxWidth,
// cutting only on rune boundaries.
func splitPoint(word string, maxWidth, size float64) int {
	cut := 0
	for i := range word {
		if i == 0 {
			continue
		}
		if StringWidth(word[:i], size) > maxWidth {
			break
		}
		cut = i
	}
	if cut == 0 {
		// A single rune wider than the line still emits whole.
		_, n := utf8.DecodeRuneInString(word)
		return n
	}
	return cut
}
