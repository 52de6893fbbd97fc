// Package main provides the entry point for the mru CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/donghojung/mru/internal/config"
	"github.com/donghojung/mru/internal/constants"
	"github.com/donghojung/mru/internal/editor"
	"github.com/donghojung/mru/internal/logging"
	"github.com/donghojung/mru/internal/mru"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"
	// Commit is the git commit hash, set at build time via ldflags
	Commit = "unknown"
)

// env is the process environment the command runs against.
type env struct {
	getenv      func(string) string
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	interactive func() bool
	newOpener   func(commandLine string) (editor.Opener, error)
}

func defaultEnv() *env {
	return &env{
		getenv: os.Getenv,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		interactive: func() bool {
			return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stderr.Fd())
		},
		newOpener: func(commandLine string) (editor.Opener, error) {
			return editor.New(commandLine)
		},
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func main() {
	os.Exit(run(defaultEnv(), os.Args[1:]))
}

// options holds the parsed command-line flags.
type options struct {
	add     bool
	clean   bool
	quiet   bool
	show    bool
	tidy    bool
	version bool
}

func (o *options) mode() string {
	switch {
	case o.add:
		return "add"
	case o.clean:
		return "clean"
	case o.show:
		return "show"
	case o.tidy:
		return "tidy"
	default:
		return "open"
	}
}

// run executes the command and returns the process exit code.
func run(e *env, args []string) int {
	logging.SetGlobal(logging.NewWriter(e.stderr, e.getenv(constants.EnvDebug) == "1"))

	opts := &options{}
	cmd := newRootCmd(e, opts)
	cmd.SetArgs(args)
	cmd.SetIn(e.stdin)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)

	err := cmd.Execute()
	if err != nil {
		logging.Global().SetQuiet(opts.quiet)
		logging.Error("%v", err)
	}
	_ = logging.Global().Close()
	return mru.ExitCode(err)
}

func newRootCmd(e *env, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mru [flags] [patterns...]",
		Short: "Open recently used files",
		Long: `mru keeps a most-recently-used list of files and opens them in your editor.

With patterns, the list is searched for entries containing every pattern in
order. Matching ignores case unless a pattern has an uppercase letter.
Without patterns, the most recent files are offered.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMain(e, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.add, "add", "a", false, "Add the given paths without opening them")
	flags.BoolVarP(&opts.clean, "clean", "c", false, "Delete the file list")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress non-essential output")
	flags.BoolVarP(&opts.show, "show", "s", false, "Print the most recent files")
	flags.BoolVarP(&opts.tidy, "tidy", "t", false, "Drop files that no longer exist")
	flags.BoolVarP(&opts.version, "version", "v", false, "Print version information")
	cmd.MarkFlagsMutuallyExclusive("add", "clean", "show", "tidy")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return mru.InvalidArgumentError("%v", err)
	})

	return cmd
}

// runMain loads configuration, sets up logging, and dispatches on mode.
func runMain(e *env, opts *options, args []string) error {
	if opts.version {
		fmt.Fprintf(e.stdout, "mru %s (%s)\n", Version, Commit)
		return nil
	}

	configPath, err := config.DefaultConfigPath(e.getenv)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath, e.getenv)
	if err != nil {
		return mru.InvalidArgumentError("%v", err)
	}
	if cfg.Quiet {
		opts.quiet = true
	}

	setupLogging(e, cfg, opts)

	mode := opts.mode()
	if mode != "add" && mode != "open" && len(args) > 0 {
		return mru.InvalidArgumentError("-%c takes no arguments", mode[0])
	}

	a := &app{
		env:    e,
		store:  mru.New(cfg.Store()),
		quiet:  opts.quiet,
		editor: editor.Resolve(cfg.Editor, e.getenv),
	}

	if mode != "clean" {
		if err := a.store.Ensure(); err != nil {
			return err
		}
	}

	logging.Log("mode=%s args=%q", mode, args)
	switch mode {
	case "add":
		return a.add(args)
	case "clean":
		return a.clean()
	case "show":
		return a.show()
	case "tidy":
		return a.tidy()
	default:
		return a.open(args)
	}
}

// setupLogging replaces the global logger with one that also writes to the
// log file next to the store. Failing to open the file is not fatal.
func setupLogging(e *env, cfg *config.Config, opts *options) {
	logPath := cfg.LogPath()
	logger, err := openLogFile(logPath, e.stderr, cfg.Debug)
	if err != nil {
		logger = logging.NewWriter(e.stderr, cfg.Debug)
	}

	logger.SetMode(opts.mode())
	logger.SetQuiet(opts.quiet)
	_ = logging.Global().Close()
	logging.SetGlobal(logger)

	if err != nil {
		logging.Warn("log file unavailable: %v", err)
	}
}

func openLogFile(logPath string, w io.Writer, debug bool) (logging.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil { //nolint:gosec // G301: standard directory permissions
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return logging.NewFile(logPath, w, debug)
}
