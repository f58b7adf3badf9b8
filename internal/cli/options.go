package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unxutils/lsr/internal/glob"
	"github.com/unxutils/lsr/pkg/lsr"
)

type listFlagValues struct {
	all, almostAll, ignoreBackups, directory   bool
	derefCommandLine, derefSymlinkToDir, deref bool
	recursive, groupDirsFirst, unsorted        bool
	verbose                                    bool
	hide, color, sort                          string
	ignore                                     []string
}

var listFlags listFlagValues

func init() {
	f := rootCmd.Flags()

	f.BoolVarP(&listFlags.all, "all", "a", false,
		"do not ignore entries starting with .")
	f.BoolVarP(&listFlags.almostAll, "almost-all", "A", false,
		"do not list implied . and ..")
	f.BoolVarP(&listFlags.ignoreBackups, "ignore-backups", "B", false,
		"do not list implied entries ending with ~")
	f.BoolVarP(&listFlags.directory, "directory", "d", false,
		"list directories themselves, not their contents")
	f.BoolVarP(&listFlags.derefCommandLine, "dereference-command-line", "H", false,
		"follow symbolic links listed on the command line")
	f.BoolVar(&listFlags.derefSymlinkToDir, "dereference-command-line-symlink-to-dir", false,
		"follow each command line symbolic link that points to a directory")
	f.BoolVarP(&listFlags.deref, "dereference", "L", false,
		"show information for the file a link references rather than the link itself")
	f.BoolVarP(&listFlags.recursive, "recursive", "R", false,
		"list subdirectories recursively")
	f.BoolVar(&listFlags.groupDirsFirst, "group-directories-first", false,
		"group directories before files; disabled by --sort=none")
	f.StringVar(&listFlags.hide, "hide", "",
		"do not list entries matching shell PATTERN\n"+
			"(overridden by -a or -A)")
	f.StringArrayVarP(&listFlags.ignore, "ignore", "I", nil,
		"do not list entries matching shell PATTERN (repeatable)")
	f.StringVar(&listFlags.sort, "sort", "name",
		"sort by WORD: name, none")
	f.BoolVarP(&listFlags.unsorted, "unsorted", "U", false,
		"do not sort; equivalent to --sort=none")
	f.StringVar(&listFlags.color, "color", "auto",
		"color the output WHEN: never, auto, always")
	f.Lookup("color").NoOptDefVal = "always"
	f.BoolVarP(&listFlags.verbose, "verbose", "v", false,
		"enable diagnostic output")
}

// buildOptions turns parsed flags into an immutable Options snapshot,
// compiling every pattern up front so malformed globs fail before any
// traversal starts.
func buildOptions(cmd *cobra.Command, args []string) (*lsr.Options, []lsr.PathArgument, error) {
	color, err := lsr.ParseColorMode(listFlags.color)
	if err != nil {
		return nil, nil, err
	}

	sortKey := lsr.SortByName
	switch {
	case listFlags.unsorted:
		sortKey = lsr.SortNone
	case listFlags.sort == "none":
		sortKey = lsr.SortNone
	case listFlags.sort == "name":
	default:
		return nil, nil, &lsr.OptionError{
			Option: "--sort",
			Msg:    fmt.Sprintf("invalid argument %q; valid arguments are 'name', 'none'", listFlags.sort),
		}
	}

	opts := &lsr.Options{
		ShowAll:                            listFlags.all,
		AlmostAll:                          listFlags.almostAll,
		IgnoreBackups:                      listFlags.ignoreBackups,
		DirectoryOnly:                      listFlags.directory,
		DereferenceCommandLine:             listFlags.derefCommandLine,
		DereferenceCommandLineSymlinkToDir: listFlags.derefSymlinkToDir,
		DereferenceAlways:                  listFlags.deref,
		Recursive:                          listFlags.recursive,
		GroupDirectoriesFirst:              listFlags.groupDirsFirst,
		Sort:                               sortKey,
		Color:                              color,
		Verbose:                            listFlags.verbose,
	}

	for _, pattern := range listFlags.ignore {
		m, err := glob.Compile(pattern)
		if err != nil {
			return nil, nil, err
		}
		opts.Ignore = append(opts.Ignore, m)
	}
	if listFlags.hide != "" {
		m, err := glob.Compile(listFlags.hide)
		if err != nil {
			return nil, nil, err
		}
		opts.Hide = m
	}

	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	if len(args) == 0 {
		args = []string{lsr.DefaultPath}
	}
	paths := make([]lsr.PathArgument, 0, len(args))
	for _, a := range args {
		paths = append(paths, lsr.Arg(a))
	}
	return opts, paths, nil
}
