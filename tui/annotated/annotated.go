// Package annotated provides a text buffer carrying styled byte ranges that
// stay attached to the right text while the buffer is edited.
package annotated

import "sort"

// Kind identifies how an annotated range is styled.
type Kind int

const (
	// KindMatch marks an occurrence of the active query.
	KindMatch Kind = iota
	// KindSelectedMatch marks a query occurrence on the selected line.
	KindSelectedMatch
	// KindSelected marks selected-line text not covered by a match.
	KindSelected
)

func (k Kind) String() string {
	switch k {
	case KindMatch:
		return "match"
	case KindSelectedMatch:
		return "selected-match"
	case KindSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Annotation tags the half-open byte range [Start, End).
type Annotation struct {
	Kind  Kind
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (a Annotation) Len() int {
	return a.End - a.Start
}

// String is text plus the annotations laid over it. Every annotation it holds
// satisfies 0 <= Start < End <= len(text).
type String struct {
	text        string
	annotations []Annotation
}

// New returns an unannotated String.
func New(text string) *String {
	return &String{text: text}
}

// String returns the plain text.
func (s *String) String() string {
	return s.text
}

// Len returns the text length in bytes.
func (s *String) Len() int {
	return len(s.text)
}

// Annotations returns a copy of the current annotations in insertion order.
func (s *String) Annotations() []Annotation {
	return append([]Annotation(nil), s.annotations...)
}

// AddAnnotation tags [start, end). Empty or out-of-bounds ranges are dropped
// and reported as false.
func (s *String) AddAnnotation(kind Kind, start, end int) bool {
	if start < 0 || start >= end || end > len(s.text) {
		return false
	}
	s.annotations = append(s.annotations, Annotation{Kind: kind, Start: start, End: end})
	return true
}

// ClearAnnotations removes every annotation and keeps the text.
func (s *String) ClearAnnotations() {
	s.annotations = s.annotations[:0]
}

// Replace substitutes the byte range [start, end) with text. end is clamped
// to the text length; a start past end leaves the string untouched.
// Annotation bounds at or after end shift with the edit, bounds inside the
// edited range move toward the edit direction without leaving it, and bounds
// before start stay put.
func (s *String) Replace(start, end int, text string) {
	if end > len(s.text) {
		end = len(s.text)
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		return
	}

	s.text = s.text[:start] + text + s.text[end:]

	removed := end - start
	inserted := len(text)
	if removed == inserted {
		return
	}
	shrank := inserted < removed
	delta := inserted - removed
	if shrank {
		delta = -delta
	}

	remap := func(b int) int {
		switch {
		case b >= end:
			if shrank {
				return b - delta
			}
			return b + delta
		case b >= start:
			if shrank {
				return max(start, b-delta)
			}
			return min(end, b+delta)
		default:
			return b
		}
	}

	kept := s.annotations[:0]
	for _, a := range s.annotations {
		a.Start = remap(a.Start)
		a.End = remap(a.End)
		if a.Start < a.End && a.Start < len(s.text) && a.End <= len(s.text) {
			kept = append(kept, a)
		}
	}
	s.annotations = kept
}

// Insert places text at byte offset at.
func (s *String) Insert(at int, text string) {
	s.Replace(at, at, text)
}

// TruncateLeftUntil removes the bytes before offset k.
func (s *String) TruncateLeftUntil(k int) {
	s.Replace(0, k, "")
}

// TruncateRightFrom removes the bytes from offset k to the end.
func (s *String) TruncateRightFrom(k int) {
	s.Replace(k, len(s.text), "")
}

// Part is a maximal run of text sharing one style. Annotated is false for
// runs no annotation covers.
type Part struct {
	Text      string
	Kind      Kind
	Annotated bool
}

// Parts splits the text into styled runs in display order. Where annotations
// overlap, the one added last wins.
func (s *String) Parts() []Part {
	if len(s.text) == 0 {
		return nil
	}

	cuts := []int{0, len(s.text)}
	for _, a := range s.annotations {
		cuts = append(cuts, a.Start, a.End)
	}
	sort.Ints(cuts)

	var parts []Part
	prev := -1
	for _, cut := range cuts {
		if prev >= 0 && cut > prev {
			part := Part{Text: s.text[prev:cut]}
			if a, ok := s.covering(prev); ok {
				part.Kind = a.Kind
				part.Annotated = true
			}
			parts = appendPart(parts, part)
		}
		prev = cut
	}
	return parts
}

func (s *String) covering(offset int) (Annotation, bool) {
	for i := len(s.annotations) - 1; i >= 0; i-- {
		a := s.annotations[i]
		if a.Start <= offset && offset < a.End {
			return a, true
		}
	}
	return Annotation{}, false
}

func appendPart(parts []Part, part Part) []Part {
	if n := len(parts); n > 0 {
		last := &parts[n-1]
		if last.Annotated == part.Annotated && (!part.Annotated || last.Kind == part.Kind) {
			last.Text += part.Text
			return parts
		}
	}
	return append(parts, part)
}
