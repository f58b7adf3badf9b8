package lsr

// Exit codes follow the reference command's documented contract:
//   - 0: full success
//   - 1: minor problems (e.g. failure to access a file discovered
//     during recursion)
//   - 2: serious trouble (inaccessible command-line argument, invalid
//     options, or a directory loop)
//   - 3: internal panic (unexpected crash)
const (
	ExitSuccess = 0
	ExitMinor   = 1
	ExitSerious = 2
	ExitPanic   = 3
)

const (
	// DefaultPath is the operand assumed when none are given.
	DefaultPath = "."

	// MaxSymlinkHops bounds symlink resolution chains; beyond this a
	// link is treated as broken.
	MaxSymlinkHops = 40
)
