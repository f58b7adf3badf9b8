// Package printer renders finalized entry trees as text, one name per
// line. It consumes the traverser's output only: names and child order
// are already final when a tree arrives here, so printing is a pure
// formatting concern.
package printer

import (
	"fmt"
	"io"

	"github.com/unxutils/lsr/internal/traverse"
	"github.com/unxutils/lsr/pkg/lsr"
)

// Printer writes listing output to a single destination.
type Printer struct {
	w     io.Writer
	theme Theme
	color bool
}

// New creates a Printer. When color is false the theme is ignored and
// names are written plain.
func New(w io.Writer, theme Theme, color bool) *Printer {
	return &Printer{w: w, theme: theme, color: color}
}

// PrintListings renders every listing in argument order: non-directory
// results first, one per line, then one block per listed directory,
// GNU style. Directory blocks get a "path:" header when more than one
// operand was given or recursion is on, and blank lines separate
// blocks.
func (p *Printer) PrintListings(listings []traverse.Listing, opts *lsr.Options) {
	var plain, expanded []traverse.Listing
	for _, l := range listings {
		if l.Root == nil {
			continue
		}
		if l.Root.Expanded() {
			expanded = append(expanded, l)
		} else {
			plain = append(plain, l)
		}
	}

	headers := opts.Recursive || len(plain)+len(expanded) > 1

	for _, l := range plain {
		fmt.Fprintln(p.w, p.render(l.Root))
	}

	first := len(plain) == 0
	for _, l := range expanded {
		if !first {
			fmt.Fprintln(p.w)
		}
		first = false
		p.printDir(l.Root, l.Root.Name, headers, opts)
	}
}

func (p *Printer) printDir(dir *lsr.Entry, label string, headers bool, opts *lsr.Options) {
	if headers {
		fmt.Fprintf(p.w, "%s:\n", label)
	}
	for _, c := range dir.Children {
		fmt.Fprintln(p.w, p.render(c))
	}

	if !opts.Recursive {
		return
	}
	for _, c := range dir.Children {
		if c.Expanded() {
			fmt.Fprintln(p.w)
			p.printDir(c, c.Path, headers, opts)
		}
	}
}

func (p *Printer) render(e *lsr.Entry) string {
	if !p.color {
		return e.Name
	}
	return p.theme.styleFor(e.Kind).Render(e.Name)
}
