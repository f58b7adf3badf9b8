package glob

// state is one node of the compiled automaton. Stars are self-loop
// edges, so a state can be both looping and terminal.
type state struct {
	out      []edge
	terminal bool
}

type edge struct {
	expr expression
	next *state
}

// matchRunes advances the set of live states across every rune of the
// name and returns the states still live at the end. An empty set
// means the name ran past every possible match.
func matchRunes(initial map[*state]struct{}, name string) map[*state]struct{} {
	a := make(map[*state]struct{}, len(initial))
	b := make(map[*state]struct{}, len(initial))
	for n := range initial {
		a[n] = struct{}{}
	}

	for _, r := range name {
		if len(a) == 0 {
			return nil
		}
		for n := range a {
			for _, e := range n.out {
				if e.expr.match(r) {
					b[e.next] = struct{}{}
				}
			}
		}
		a, b = b, a
		clear(b)
	}
	return a
}
