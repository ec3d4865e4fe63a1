// Package highlight computes the annotations for visible lines in one render
// pass: query matches everywhere and the selection band on the selected line.
package highlight

import (
	"strings"

	"github.com/grovetools/svcman/tui/annotated"
)

// Highlighter is built fresh for every render pass. Results are memoized per
// line index for the lifetime of the value only.
type Highlighter struct {
	query     string
	selected  int
	selection bool
	lines     map[int][]annotated.Annotation
}

// New returns a Highlighter for query (empty means no query) with selected as
// the selected line index. When selection is false the selected line is drawn
// like any other.
func New(query string, selected int, selection bool) *Highlighter {
	return &Highlighter{
		query:     query,
		selected:  selected,
		selection: selection,
		lines:     make(map[int][]annotated.Annotation),
	}
}

// Highlight computes and stores the annotations for the line at idx.
func (h *Highlighter) Highlight(idx int, line string) {
	if _, done := h.lines[idx]; done {
		return
	}

	onSelected := h.selection && idx == h.selected
	matchKind := annotated.KindMatch
	if onSelected {
		matchKind = annotated.KindSelectedMatch
	}

	matches := MatchSpans(line, h.query)
	result := make([]annotated.Annotation, 0, len(matches)*2+1)
	for _, m := range matches {
		result = append(result, annotated.Annotation{Kind: matchKind, Start: m[0], End: m[1]})
	}

	if onSelected {
		result = append(result, fillGaps(matches, len(line))...)
	}

	h.lines[idx] = result
}

// Annotations returns what Highlight computed for idx. The second result is
// false when idx was never highlighted in this pass.
func (h *Highlighter) Annotations(idx int) ([]annotated.Annotation, bool) {
	a, ok := h.lines[idx]
	return a, ok
}

// Annotate highlights idx and returns line as an annotated string.
func (h *Highlighter) Annotate(idx int, line string) *annotated.String {
	h.Highlight(idx, line)
	s := annotated.New(line)
	annotations, _ := h.Annotations(idx)
	for _, a := range annotations {
		s.AddAnnotation(a.Kind, a.Start, a.End)
	}
	return s
}

// MatchSpans returns the byte ranges of the non-overlapping occurrences of
// query in line, scanning left to right. An empty query matches nothing.
func MatchSpans(line, query string) [][2]int {
	if query == "" {
		return nil
	}
	var spans [][2]int
	offset := 0
	for offset <= len(line)-len(query) {
		i := strings.Index(line[offset:], query)
		if i < 0 {
			break
		}
		start := offset + i
		end := start + len(query)
		spans = append(spans, [2]int{start, end})
		offset = end
	}
	return spans
}

// fillGaps covers every byte of [0, length) not inside a match with a
// Selected annotation.
func fillGaps(matches [][2]int, length int) []annotated.Annotation {
	var gaps []annotated.Annotation
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			gaps = append(gaps, annotated.Annotation{Kind: annotated.KindSelected, Start: prev, End: m[0]})
		}
		prev = m[1]
	}
	if prev < length {
		gaps = append(gaps, annotated.Annotation{Kind: annotated.KindSelected, Start: prev, End: length})
	}
	return gaps
}
