package layout

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Span is a half-open byte range [Start, End) of a text's content.
type Span struct {
	Start, End int
}

// wordStarts returns the byte offset of every word in s. Segments without a
// letter or digit (spaces, punctuation) do not start words.
func wordStarts(s string) []int {
	var starts []int
	state := -1
	offset := 0
	for rest := s; len(rest) > 0; {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if strings.IndexFunc(word, isWordRune) >= 0 {
			starts = append(starts, offset)
		}
		offset += len(word)
	}
	return starts
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// Wrap breaks the content into lines no wider than width, breaking only
// between words and at newlines, and returns the total height. A word wider
// than width gets a line of its own and overflows.
func (t *Text) Wrap(width float64) float64 {
	content := t.content
	t.lines = t.lines[:0]
	if content == "" {
		return 0
	}

	var total float64
	flush := func(start, end int) {
		t.lines = append(t.lines, Span{Start: start, End: end})
		_, h := t.lineSize(content[start:end])
		total += h
	}

	var (
		start         int // start of the open line
		prevLast      int // end of the last word accepted on the open line
		prevWordStart int // start of the word being placed
	)

	// fit extends the open line to boundary, breaking before the word being
	// placed if the line gets too wide and already holds another word.
	fit := func(boundary int) {
		for {
			slice := trimRight(content[start:boundary])
			w, _ := t.lineSize(slice)
			if start < prevLast && w > width {
				flush(start, prevLast)
				start = prevWordStart
				continue
			}
			prevLast = start + len(slice)
			return
		}
	}

	newlines := newlineOffsets(content)
	boundaries := wordStarts(content)
	if len(boundaries) > 0 {
		boundaries = boundaries[1:]
	}
	boundaries = append(boundaries, len(content))

	for _, next := range boundaries {
		for len(newlines) > 0 && newlines[0] < next {
			nl := newlines[0]
			newlines = newlines[1:]

			fit(nl)
			flush(start, prevLast)
			start, prevLast, prevWordStart = nl+1, nl+1, nl+1
		}
		fit(next)
		prevWordStart = next
	}

	if last := trimRight(content[start:]); strings.TrimSpace(last) != "" {
		flush(start, start+len(last))
	}
	return total
}

func newlineOffsets(s string) []int {
	var out []int
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, i)
		}
	}
	return out
}
