// Package traverse walks listing roots and builds entry trees.
//
// The traverser is the orchestrator: it classifies each root, filters
// and classifies children, recurses when asked to, sorts siblings, and
// guards against directory loops. It produces pure data and leaves
// printing to someone else, so every decision it makes is testable
// without capturing output.
//
// Each List call owns its visited-set and its result tree; no state is
// shared across roots, so callers may process independent roots
// concurrently as long as results are reassembled in argument order.
package traverse

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/unxutils/lsr/internal/files/filesystem"
	"github.com/unxutils/lsr/internal/filter"
	"github.com/unxutils/lsr/internal/logging"
	"github.com/unxutils/lsr/internal/order"
	"github.com/unxutils/lsr/internal/resolve"
	"github.com/unxutils/lsr/pkg/lsr"
)

// Listing pairs one command-line argument with its result tree. Root
// is nil when the argument was inaccessible.
type Listing struct {
	Arg  lsr.PathArgument
	Root *lsr.Entry
}

// Traverser walks directory trees using a filesystem provider.
type Traverser struct {
	fsys filesystem.Provider
	log  lsr.Logger
}

// New creates a Traverser. The logger receives a diagnostic for every
// non-fatal problem encountered mid-listing; nil disables logging.
func New(fsys filesystem.Provider, log lsr.Logger) *Traverser {
	if log == nil {
		log = logging.NewNullLogger()
	}
	return &Traverser{fsys: fsys, log: log}
}

// ListAll processes every root independently, in argument order. One
// inaccessible root never blocks the others. The returned error slice
// carries every problem observed, fatal or not, for exit-status
// aggregation via lsr.StatusForErrors.
func (t *Traverser) ListAll(ctx context.Context, args []lsr.PathArgument, opts *lsr.Options) ([]Listing, []error) {
	listings := make([]Listing, 0, len(args))
	var all []error

	for _, arg := range args {
		root, errs := t.List(ctx, arg, opts)
		listings = append(listings, Listing{Arg: arg, Root: root})
		all = append(all, errs...)
	}
	return listings, all
}

// List builds the entry tree for a single root. The returned errors
// include at most one fatal command-line AccessError (in which case
// the entry is nil) plus any non-fatal diagnostics collected during
// recursion.
func (t *Traverser) List(ctx context.Context, arg lsr.PathArgument, opts *lsr.Options) (*lsr.Entry, []error) {
	kind, err := resolve.Classify(t.fsys, arg.Path, true, opts)
	if err != nil {
		t.log.Error("%v", err)
		return nil, []error{err}
	}

	root := &lsr.Entry{Name: arg.Given, Path: arg.Path, Kind: kind}
	if opts.DirectoryOnly || kind != lsr.KindDirectory {
		return root, nil
	}

	var errs []error
	visited := make(map[lsr.FileID]string)
	if !t.expand(ctx, root, opts, visited, &errs, true) {
		// A command-line directory that cannot be opened yields no
		// entry at all, like any other inaccessible argument.
		return nil, errs
	}
	return root, errs
}

// expand enumerates dir's children and attaches them. visited maps the
// identity of every directory on the current ancestry chain to its
// path; entries are removed on the way back up so only true ancestry
// cycles trip the guard, not repeated visits to sibling subtrees.
// commandLine marks dir as a command-line argument, making a failure
// to open it fatal for its root. Reports whether dir could be opened
// for enumeration.
func (t *Traverser) expand(ctx context.Context, dir *lsr.Entry, opts *lsr.Options, visited map[lsr.FileID]string, errs *[]error, commandLine bool) bool {
	if ctx.Err() != nil {
		*errs = append(*errs, fmt.Errorf("listing of %s aborted: %w", dir.Path, lsr.ErrPartialListing))
		return true
	}

	id, err := t.fsys.Identity(dir.Path)
	if err != nil {
		t.fail(errs, &lsr.AccessError{Path: dir.Path, Op: "stat", Err: err, CommandLine: commandLine})
		return false
	}
	if ancestor, ok := visited[id]; ok {
		loopErr := &lsr.LoopError{Path: dir.Path, Dir: ancestor}
		t.log.Error("%v", loopErr)
		*errs = append(*errs, loopErr)
		return true
	}
	visited[id] = dir.Path
	defer delete(visited, id)

	names, err := t.fsys.ReadDirNames(dir.Path)
	if err != nil {
		t.fail(errs, &lsr.AccessError{Path: dir.Path, Op: "readdir", Err: err, CommandLine: commandLine})
		return false
	}

	// "." and ".." never come back from enumeration; offer them to the
	// filter alongside the real children and let the precedence rules
	// decide.
	candidates := append([]string{".", ".."}, names...)
	children := make([]*lsr.Entry, 0, len(names))

	for _, name := range candidates {
		if !filter.Include(name, opts) {
			continue
		}

		childPath := filepath.Join(dir.Path, name)

		// Both dot entries are directories whenever they are listable
		// at all; stat'ing the joined path instead would walk out of
		// the directory being expanded.
		if name == "." || name == ".." {
			children = append(children, &lsr.Entry{Name: name, Path: childPath, Kind: lsr.KindDirectory})
			continue
		}

		kind, err := resolve.Classify(t.fsys, childPath, false, opts)
		if err != nil {
			// The entry vanished between enumeration and stat, or is
			// otherwise unreadable. Skip it, keep listing.
			t.fail(errs, err)
			continue
		}

		child := &lsr.Entry{Name: name, Path: childPath, Kind: kind}
		if opts.Recursive && kind == lsr.KindDirectory {
			t.expand(ctx, child, opts, visited, errs, false)
		}
		children = append(children, child)
	}

	order.Sort(children, opts)
	dir.Children = children
	return true
}

// fail records a non-fatal diagnostic and keeps the listing going.
func (t *Traverser) fail(errs *[]error, err error) {
	t.log.Error("%v", err)
	*errs = append(*errs, err)
}
