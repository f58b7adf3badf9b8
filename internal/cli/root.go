package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/unxutils/lsr/internal/config"
	"github.com/unxutils/lsr/internal/files/filesystem"
	"github.com/unxutils/lsr/internal/logging"
	"github.com/unxutils/lsr/internal/printer"
	"github.com/unxutils/lsr/internal/traverse"
	"github.com/unxutils/lsr/pkg/lsr"
)

var rootCmd = &cobra.Command{
	Use:   "lsr [flags] [path ...]",
	Short: "List directory contents",
	Long: `lsr lists information about files of any type, including directories.

For directory operands it lists the contents, not recursively, omitting
names that start with '.'. For other operands it lists just the name.
With no operand it lists the current directory. Output is sorted by
byte-wise name comparison, one entry per line.

Exit codes:
  0 - Success
  1 - Minor problems (e.g. failure to access a file discovered while
      listing a directory)
  2 - Serious trouble (inaccessible command-line argument, invalid
      options, a bad pattern, or a directory loop)
  3 - Panic or unexpected system error`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runList,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// userConfig holds the optional lsr.yaml content for the current
// invocation. Loaded once in Execute.
var userConfig = &config.Config{}

// Execute runs the root command. Config defaults are prepended to the
// real arguments so users can pin flags like -A per machine.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "lsr: warning: %v\n", err)
	}
	if cfg, err := config.Load(); err == nil {
		userConfig = cfg
	} else if !errors.Is(err, config.ErrConfigNotFound) {
		fmt.Fprintf(os.Stderr, "lsr: %v\n", err)
		return &lsr.ExitError{Code: lsr.ExitSerious}
	}

	rootCmd.SetArgs(append(append([]string{}, userConfig.Defaults...), os.Args[1:]...))

	err := rootCmd.Execute()
	if err != nil {
		var exitErr *lsr.ExitError
		if !errors.As(err, &exitErr) {
			// Diagnostics for listing problems were already printed by
			// the logger; everything else surfaces here.
			fmt.Fprintf(os.Stderr, "lsr: %v\n", err)
		}
	}
	return err
}

func runList(cmd *cobra.Command, args []string) error {
	opts, paths, err := buildOptions(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.NewConsoleLogger(opts.Verbose)
	tr := traverse.New(filesystem.NewOSFileSystem(), log)
	listings, errs := tr.ListAll(ctx, paths, opts)

	theme := printer.BuildTheme(printer.ThemeColors{
		File:       userConfig.Theme.File,
		Directory:  userConfig.Theme.Directory,
		Symlink:    userConfig.Theme.Symlink,
		SymlinkDir: userConfig.Theme.SymlinkDir,
	})
	pr := printer.New(os.Stdout, theme, printer.ColorEnabled(opts.Color))
	pr.PrintListings(listings, opts)

	if status := lsr.StatusForErrors(errs); status != lsr.ExitSuccess {
		return &lsr.ExitError{Code: status}
	}
	return nil
}
