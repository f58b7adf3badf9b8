// Package glob compiles shell wildcard patterns into name matchers.
//
// Supported syntax is the shell's, not regular expressions: '*' matches
// any run of characters, '?' matches one character, and '[...]' or
// '[!...]' match a character class. As in the shell, a pattern whose
// first character is a wildcard does not match a name that begins with
// a dot; dotfiles must be matched explicitly.
//
// Compile builds a small nondeterministic automaton for the pattern;
// Match walks it one rune at a time keeping the set of live states.
package glob

import (
	"strings"
	"unicode/utf8"

	"github.com/unxutils/lsr/pkg/lsr"
)

// Pattern is a compiled shell wildcard pattern matching single file
// names. Safe for concurrent use.
type Pattern struct {
	src           string
	initial       *state
	wildcardFirst bool
}

var _ lsr.NameMatcher = (*Pattern)(nil)

// Compile parses a shell wildcard pattern. Malformed patterns (an
// unterminated character class, or a trailing backslash) fail here
// with *lsr.PatternError, before any traversal begins.
func Compile(pattern string) (*Pattern, error) {
	initial, err := parse(pattern)
	if err != nil {
		return nil, err
	}

	first, _ := utf8.DecodeRuneInString(pattern)
	return &Pattern{
		src:           pattern,
		initial:       initial,
		wildcardFirst: first == '*' || first == '?',
	}, nil
}

// MustCompile is like Compile but panics on error. For patterns fixed
// at build time, mainly in tests.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source pattern.
func (p *Pattern) String() string { return p.src }

// Match reports whether the name matches the pattern. A leading
// wildcard never matches a leading dot, mirroring shell globbing.
func (p *Pattern) Match(name string) bool {
	if p.wildcardFirst && strings.HasPrefix(name, ".") {
		return false
	}

	set := matchRunes(map[*state]struct{}{p.initial: {}}, name)
	for n := range set {
		if n.terminal {
			return true
		}
	}
	return false
}

// parse converts a pattern into a chain of automaton states. Stars
// become self-loops on the current state, which also covers the
// zero-character case.
func parse(pattern string) (*state, error) {
	start := &state{}
	end := start
	appendExp := func(e expression) {
		next := &state{}
		end.out = append(end.out, edge{expr: e, next: next})
		end = next
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '*':
			end.out = append(end.out, edge{expr: starExp{}, next: end})

		case '?':
			appendExp(questionExp{})

		case '[':
			cls, consumed, err := parseClass(pattern, runes, i)
			if err != nil {
				return nil, err
			}
			appendExp(cls)
			i += consumed

		case '\\':
			if i == len(runes)-1 {
				return nil, &lsr.PatternError{
					Pattern: pattern,
					Pos:     byteOffset(runes, i),
					Msg:     "trailing backslash",
				}
			}
			i++
			appendExp(literalExp(runes[i]))

		default:
			appendExp(literalExp(r))
		}
	}
	end.terminal = true
	return start, nil
}

// parseClass parses a character class starting at the '[' at runes[i].
// It returns the class expression and the number of runes consumed
// beyond the opening bracket.
func parseClass(pattern string, runes []rune, i int) (expression, int, error) {
	cls := &classExp{}
	j := i + 1

	if j < len(runes) && (runes[j] == '!' || runes[j] == '^') {
		cls.negated = true
		j++
	}

	// member decodes one class member at j, handling backslash escapes.
	member := func() rune {
		r := runes[j]
		if r == '\\' && j+1 < len(runes) {
			j++
			r = runes[j]
		}
		j++
		return r
	}

	// A ']' as the first member is a literal, not the terminator.
	first := true
	for j < len(runes) {
		if runes[j] == ']' && !first {
			return cls, j - i, nil
		}
		first = false

		lo := member()
		if j+1 < len(runes) && runes[j] == '-' && runes[j+1] != ']' {
			j++ // consume '-'
			hi := member()
			if hi < lo {
				return nil, 0, &lsr.PatternError{
					Pattern: pattern,
					Pos:     byteOffset(runes, j-1),
					Msg:     "invalid character range",
				}
			}
			cls.ranges = append(cls.ranges, runeRange{lo: lo, hi: hi})
			continue
		}
		cls.ranges = append(cls.ranges, runeRange{lo: lo, hi: lo})
	}

	return nil, 0, &lsr.PatternError{
		Pattern: pattern,
		Pos:     byteOffset(runes, i),
		Msg:     "unterminated character class",
	}
}

func byteOffset(runes []rune, i int) int {
	return len(string(runes[:i]))
}
