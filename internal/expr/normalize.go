package expr

import (
	"unicode"
)

// directives are stripped as plain substrings, longest first. A directive
// that happens to sit inside the mathematical content is removed as well.
var directives = []string{
	"indefiniteintegralof",
	"definiteintegralof",
	"indefiniteintegral",
	"definiteintegral",
	"theintegralof",
	"integralof",
	"integrate",
	"compute",
	"find",
	"∫",
	"不定积分",
	"定积分",
	"的积分",
	"积分",
	"计算",
	"求",
}

// Normalized is an integrand in canonical form.
type Normalized struct {
	// Text is lowercase and used for matching.
	Text string
	// Display keeps the caller's casing with the same characters removed.
	Display string
}

// Empty reports whether nothing was left after normalization.
func (n Normalized) Empty() bool {
	return n.Text == ""
}

func (n Normalized) String() string {
	return n.Text
}

// Normalize strips whitespace, directive phrases and a trailing "dx", then
// folds case. Removal repeats until nothing changes, so normalizing a
// normalized Text is a no-op.
func Normalize(raw string) Normalized {
	orig := make([]rune, 0, len(raw))
	for _, r := range raw {
		if !unicode.IsSpace(r) {
			orig = append(orig, r)
		}
	}
	lower := make([]rune, len(orig))
	for i, r := range orig {
		lower[i] = unicode.ToLower(r)
	}

	for changed := true; changed; {
		changed = false
		for _, d := range directives {
			dr := []rune(d)
			if i := indexRunes(lower, dr); i >= 0 {
				orig = cutRunes(orig, i, len(dr))
				lower = cutRunes(lower, i, len(dr))
				changed = true
			}
		}
		if n := len(lower); n >= 2 && lower[n-2] == 'd' && lower[n-1] == 'x' {
			orig = orig[:n-2]
			lower = lower[:n-2]
			changed = true
		}
	}

	return Normalized{Text: string(lower), Display: string(orig)}
}

func indexRunes(s, sub []rune) int {
	if len(sub) == 0 {
		return -1
	}
outer:
	for i := 0; i+len(sub) <= len(s); i++ {
		for j := range sub {
			if s[i+j] != sub[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

func cutRunes(s []rune, i, n int) []rune {
	out := make([]rune, 0, len(s)-n)
	out = append(out, s[:i]...)
	return append(out, s[i+n:]...)
}
