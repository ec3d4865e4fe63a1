package annotated

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAnnotation(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"whole text", 0, 5, true},
		{"inner range", 1, 3, true},
		{"degenerate", 2, 2, false},
		{"reversed", 3, 1, false},
		{"negative start", -1, 2, false},
		{"past end", 3, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("hello")
			assert.Equal(t, tt.want, s.AddAnnotation(KindMatch, tt.start, tt.end))
			if tt.want {
				assert.Len(t, s.Annotations(), 1)
			} else {
				assert.Empty(t, s.Annotations())
			}
		})
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		initial  []Annotation
		start    int
		end      int
		with     string
		wantText string
		want     []Annotation
	}{
		{
			name:     "edit after annotation leaves it alone",
			text:     "hello world",
			initial:  []Annotation{{KindMatch, 0, 5}},
			start:    6,
			end:      11,
			with:     "earth!!",
			wantText: "hello earth!!",
			want:     []Annotation{{KindMatch, 0, 5}},
		},
		{
			name:     "same length replacement keeps bounds",
			text:     "abcdef",
			initial:  []Annotation{{KindMatch, 1, 4}},
			start:    2,
			end:      3,
			with:     "X",
			wantText: "abXdef",
			want:     []Annotation{{KindMatch, 1, 4}},
		},
		{
			name:     "append extends covering annotation",
			text:     "ab",
			initial:  []Annotation{{KindMatch, 0, 2}},
			start:    2,
			end:      2,
			with:     "c",
			wantText: "abc",
			want:     []Annotation{{KindMatch, 0, 3}},
		},
		{
			name:     "delete last byte shrinks annotation",
			text:     "abc",
			initial:  []Annotation{{KindMatch, 0, 3}},
			start:    2,
			end:      3,
			with:     "",
			wantText: "ab",
			want:     []Annotation{{KindMatch, 0, 2}},
		},
		{
			name:     "deleting everything drops annotation",
			text:     "abc",
			initial:  []Annotation{{KindMatch, 0, 3}},
			start:    0,
			end:      3,
			with:     "",
			wantText: "",
			want:     nil,
		},
		{
			name:     "growth inside range stays within edit",
			text:     "abcdef",
			initial:  []Annotation{{KindSelected, 2, 4}},
			start:    1,
			end:      3,
			with:     "XXXXX",
			wantText: "aXXXXXdef",
			want:     []Annotation{{KindSelected, 3, 7}},
		},
		{
			name:     "end is clamped to length",
			text:     "abcdef",
			initial:  []Annotation{{KindMatch, 0, 2}},
			start:    3,
			end:      100,
			with:     "",
			wantText: "abc",
			want:     []Annotation{{KindMatch, 0, 2}},
		},
		{
			name:     "start past end is a no-op",
			text:     "abcdef",
			initial:  []Annotation{{KindMatch, 0, 2}},
			start:    5,
			end:      2,
			with:     "zz",
			wantText: "abcdef",
			want:     []Annotation{{KindMatch, 0, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.text)
			for _, a := range tt.initial {
				require.True(t, s.AddAnnotation(a.Kind, a.Start, a.End))
			}

			s.Replace(tt.start, tt.end, tt.with)

			assert.Equal(t, tt.wantText, s.String())
			if tt.want == nil {
				assert.Empty(t, s.Annotations())
			} else {
				assert.Equal(t, tt.want, s.Annotations())
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Run("left", func(t *testing.T) {
		s := New("hello world")
		s.AddAnnotation(KindMatch, 0, 5)
		s.AddAnnotation(KindSelectedMatch, 6, 11)

		s.TruncateLeftUntil(6)

		assert.Equal(t, "world", s.String())
		assert.Equal(t, []Annotation{{KindSelectedMatch, 0, 5}}, s.Annotations())
	})

	t.Run("right", func(t *testing.T) {
		s := New("hello world")
		s.AddAnnotation(KindMatch, 0, 5)
		s.AddAnnotation(KindSelectedMatch, 6, 11)

		s.TruncateRightFrom(5)

		assert.Equal(t, "hello", s.String())
		assert.Equal(t, []Annotation{{KindMatch, 0, 5}}, s.Annotations())
	})
}

func TestReplaceKeepsAnnotationsInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := "abcdefghij"

	s := New("the quick brown fox jumps over the lazy dog")
	for i := 0; i < 500; i++ {
		if rng.Intn(3) == 0 && s.Len() > 0 {
			start := rng.Intn(s.Len())
			end := start + 1 + rng.Intn(s.Len()-start)
			s.AddAnnotation(Kind(rng.Intn(3)), start, end)
		}

		start := rng.Intn(s.Len() + 1)
		end := start + rng.Intn(4)
		n := rng.Intn(4)
		text := make([]byte, n)
		for j := range text {
			text[j] = alphabet[rng.Intn(len(alphabet))]
		}
		s.Replace(start, end, string(text))

		for _, a := range s.Annotations() {
			require.True(t, 0 <= a.Start && a.Start < a.End && a.End <= s.Len(),
				"annotation %+v out of bounds for length %d at step %d", a, s.Len(), i)
		}
	}
}

func TestParts(t *testing.T) {
	t.Run("unannotated", func(t *testing.T) {
		assert.Equal(t, []Part{{Text: "plain"}}, New("plain").Parts())
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, New("").Parts())
	})

	t.Run("adjacent kinds", func(t *testing.T) {
		s := New("hello world")
		s.AddAnnotation(KindSelectedMatch, 0, 5)
		s.AddAnnotation(KindSelected, 5, 11)

		assert.Equal(t, []Part{
			{Text: "hello", Kind: KindSelectedMatch, Annotated: true},
			{Text: " world", Kind: KindSelected, Annotated: true},
		}, s.Parts())
	})

	t.Run("gap and overlap", func(t *testing.T) {
		s := New("abc def ghi")
		s.AddAnnotation(KindSelected, 0, 7)
		s.AddAnnotation(KindMatch, 4, 7)

		assert.Equal(t, []Part{
			{Text: "abc ", Kind: KindSelected, Annotated: true},
			{Text: "def", Kind: KindMatch, Annotated: true},
			{Text: " ghi"},
		}, s.Parts())
	})
}
