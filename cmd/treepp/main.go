// Command treepp renders a directory tree in the style of the Windows
// `tree` command, with filtering, sorting, metadata columns, and
// structured export formats.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/water-run/treepp/internal/cliadapt"
	"github.com/water-run/treepp/internal/config"
	"github.com/water-run/treepp/internal/pipeline"
	"github.com/water-run/treepp/internal/scan"
	"github.com/water-run/treepp/internal/sink"
	"github.com/water-run/treepp/internal/sortkey"
)

// applicationVersion is set at build time in a release pipeline; the
// zero value here only matters for unreleased development builds.
var applicationVersion = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run builds and executes the root command against normalized arguments,
// returning the process exit code so main stays a one-line wrapper.
func run(rawArgs []string, stdout *os.File) int {
	command := newRootCommand(stdout)
	command.SetArgs(cliadapt.Normalize(rawArgs))
	if err := command.Execute(); err != nil {
		return exitCodeFor(err)
	}
	return 0
}

type flagSet struct {
	ascii, noIndent                                  bool
	includeFiles, fullPath, quote                     bool
	showSize, humanReadable, showDate, diskUsage      bool
	reverse, dirsFirst                                bool
	sortKeyRaw                                        string
	excludePatterns, includePatterns                  []string
	ignoreCase                                        bool
	level                                             int
	report, prune, noWinBanner                        bool
	silent                                            bool
	output                                            string
	threads                                           int
	batch, gitignore                                  bool
}

func newRootCommand(stdout *os.File) *cobra.Command {
	var flags flagSet
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          "treepp [path]",
		Short:        "display a directory tree with Windows tree-style formatting",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(stdout, "treepp version:", applicationVersion)
				return nil
			}
			return runTree(cmd, args, flags, stdout)
		},
	}

	rootCommand.Flags().BoolVarP(&showVersion, "version", "v", false, "display application version")
	registerFlags(rootCommand, &flags)
	return rootCommand
}

func registerFlags(cmd *cobra.Command, f *flagSet) {
	flags := cmd.Flags()
	flags.BoolVarP(&f.batch, "batch", "b", false, "scan with a bounded worker pool instead of streaming")
	flags.BoolVarP(&f.ascii, "ascii", "a", false, "use ASCII connector glyphs instead of Unicode")
	flags.BoolVarP(&f.includeFiles, "files", "f", false, "include files, not only directories")
	flags.BoolVarP(&f.fullPath, "full-path", "p", false, "print the full path instead of the base name")
	flags.BoolVarP(&f.humanReadable, "human-readable", "H", false, "print sizes in binary-prefix human units (implies --size)")
	flags.BoolVarP(&f.noIndent, "no-indent", "i", false, "omit branch connectors")
	flags.BoolVarP(&f.reverse, "reverse", "r", false, "reverse the sort order")
	flags.BoolVarP(&f.showSize, "size", "s", false, "print entry sizes")
	flags.BoolVarP(&f.showDate, "date", "d", false, "print modification timestamps")
	flags.StringArrayVarP(&f.excludePatterns, "exclude", "I", nil, "exclude entries matching pattern (repeatable)")
	flags.IntVarP(&f.level, "level", "L", -1, "maximum descent depth (-1 for unlimited)")
	flags.StringArrayVarP(&f.includePatterns, "include", "m", nil, "include only files matching pattern (repeatable)")
	flags.BoolVarP(&f.diskUsage, "disk-usage", "u", false, "show cumulative directory size (implies --size, forces batch)")
	flags.BoolVarP(&f.report, "report", "e", false, "print a directory/file count summary")
	flags.BoolVarP(&f.prune, "prune", "P", false, "omit directories with no files beneath them (forces batch)")
	flags.BoolVarP(&f.noWinBanner, "no-win-banner", "N", false, "omit the native-tree banner header")
	flags.BoolVarP(&f.silent, "silent", "l", false, "suppress console output (requires --output)")
	flags.StringVarP(&f.output, "output", "o", "", "write output to path (.txt/.json/.yml/.yaml/.toml)")
	flags.IntVarP(&f.threads, "thread", "t", 8, "worker pool size (forces batch)")
	flags.BoolVarP(&f.gitignore, "gitignore", "g", false, "honor .gitignore rules")
	flags.BoolVarP(&f.dirsFirst, "dirs-first", "O", false, "list directories before files")
	flags.BoolVarP(&f.quote, "quote", "Q", false, "wrap displayed names in double quotes")
	flags.StringVarP(&f.sortKeyRaw, "sort", "K", "name", "sort key: name|size|mtime|ctime")
	flags.BoolVar(&f.ignoreCase, "ignore-case", false, "fold ASCII case when matching --exclude/--include patterns")
}

func runTree(cmd *cobra.Command, args []string, f flagSet, stdout *os.File) error {
	rootPath := "."
	rootExplicit := false
	if len(args) == 1 {
		rootPath = args[0]
		rootExplicit = true
	}
	absoluteRoot, err := absPath(rootPath)
	if err != nil {
		return fmt.Errorf("treepp: %w", err)
	}

	sortKey, err := sortkey.ParseKey(f.sortKeyRaw)
	if err != nil {
		return fmt.Errorf("treepp: %w", err)
	}

	cfg := config.Defaults()
	cfg.RootPath = absoluteRoot
	cfg.RootPathExplicit = rootExplicit
	cfg.ASCII = f.ascii
	cfg.NoIndent = f.noIndent
	cfg.IncludeFiles = f.includeFiles
	cfg.FullPath = f.fullPath
	cfg.Quote = f.quote
	cfg.ShowSize = f.showSize
	cfg.HumanReadable = f.humanReadable
	cfg.ShowDate = f.showDate
	cfg.DiskUsage = f.diskUsage
	cfg.Reverse = f.reverse
	cfg.DirsFirst = f.dirsFirst
	cfg.SortKey = sortKey
	cfg.ExcludePatterns = f.excludePatterns
	cfg.IncludePatterns = f.includePatterns
	cfg.IgnoreCase = f.ignoreCase
	cfg.Level = f.level
	cfg.Report = f.report
	cfg.Prune = f.prune
	cfg.NoWinBanner = f.noWinBanner
	cfg.Silent = f.silent
	cfg.Output = f.output
	cfg.Threads = f.threads
	cfg.ThreadsIsSet = cmd.Flags().Changed("thread")
	cfg.Batch = f.batch
	cfg.Gitignore = f.gitignore

	fileDefaults, err := config.LoadFileDefaults(config.LoadOptions{})
	if err != nil {
		return fmt.Errorf("treepp: %w", err)
	}
	fileDefaults.ApplyTo(&cfg,
		cmd.Flags().Changed("thread"),
		cmd.Flags().Changed("gitignore"),
		cmd.Flags().Changed("report"),
	)

	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := sink.New(stdout, cfg.Output, cfg.Silent)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	_, runErr := pipeline.Run(ctx, cfg, absoluteRoot, s)
	return runErr
}

func absPath(p string) (string, error) {
	if p == "." || p == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return cwd, nil
	}
	return filepath.Abs(p)
}

// exitCodeFor maps an error returned from command execution to the
// documented exit code taxonomy: 1 configuration error, 2 fatal scan
// error, 3 output error, 1 for anything else unrecognized (cobra usage
// errors, flag parsing failures).
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, scan.ErrRootUnreadable):
		return 2
	case errors.Is(err, sink.ErrOutputWrite):
		return 3
	default:
		return 1
	}
}
