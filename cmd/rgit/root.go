package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/rgit/internal/config"
	"github.com/raphi011/rgit/internal/git"
	"github.com/raphi011/rgit/internal/log"
	"github.com/raphi011/rgit/internal/output"
	"github.com/raphi011/rgit/internal/ui/styles"
)

var (
	// Global flags
	verbosity int
	quiet     bool
	noColor   bool

	// Shared state injected into commands
	cfg     *config.Config
	home    string
	workDir string
	backend git.Backend = git.CLI{}
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rgit",
	Short: "Find unpushed work and recently used branches",
	Long: `rgit inspects local git repositories without changing them.

"rgit status" walks every repository listed in the repos file and reports
dirty working trees and local branches whose commits are on no remote.
"rgit recent" lists the branches of the current repository in the order
they were last checked out.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return setup(cmd)
	},
	// Run is not set - shows help when no subcommand provided
}

// setup loads the configuration and attaches logger and printer to the
// command context. Flags are parsed at this point.
func setup(cmd *cobra.Command) error {
	level := log.LevelFromCount(verbosity)
	if quiet {
		level = log.Quiet
	}

	ctx := cmd.Context()
	ctx = log.WithLogger(ctx, log.New(os.Stderr, level))

	var err error
	home, err = config.Home()
	if err != nil {
		return err
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = &loaded

	styles.Init(cfg.Theme)

	plain := noColor || cfg.Theme.Name == "none"
	ctx = output.WithTerminal(ctx, output.NewTerminal(os.Stdout, os.Environ(), plain))

	cmd.SetContext(ctx)

	if skipsGitCheck(cmd) {
		return nil
	}
	return git.CheckGit()
}

// annotationNoGit marks commands (and their subcommands) that run without
// the git binary, so a broken setup can still be inspected.
const annotationNoGit = "rgit/no-git"

func skipsGitCheck(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoGit]; ok {
			return true
		}
	}
	return false
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	var err error
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rgit: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'rgit -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase diagnostics (-v progress, -vv decisions and git commands)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newRecentCmd())
	rootCmd.AddCommand(newReposCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
