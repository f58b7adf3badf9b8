package glob

// expression matches a single rune of a candidate name.
type expression interface {
	match(r rune) bool
}

type (
	// Matches exactly this rune.
	literalExp rune

	// * matches any run of characters; compiled as a self-loop so the
	// zero-character case needs no extra edge.
	starExp struct{}

	// ? matches any single character.
	questionExp struct{}
)

// runeRange is one [lo, hi] member of a character class; single
// characters are stored with lo == hi.
type runeRange struct {
	lo, hi rune
}

// classExp matches [...] and [!...] character classes.
type classExp struct {
	negated bool
	ranges  []runeRange
}

func (e literalExp) match(r rune) bool { return rune(e) == r }
func (starExp) match(rune) bool        { return true }
func (questionExp) match(rune) bool    { return true }

func (e *classExp) match(r rune) bool {
	in := false
	for _, rr := range e.ranges {
		if rr.lo <= r && r <= rr.hi {
			in = true
			break
		}
	}
	return in != e.negated
}
