package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/rgit/internal/config"
	"github.com/raphi011/rgit/internal/log"
	"github.com/raphi011/rgit/internal/output"
	"github.com/raphi011/rgit/internal/ui/prompt"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage configuration",
		Aliases:     []string{"cfg"},
		GroupID:     GroupConfig,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoGit: ""},
		Long: `Manage rgit configuration.

Settings:   ~/.config/rgit/config.toml
Repos file: ~/.config/rgit/repos (or repos_file / RGIT_REPOS_FILE)

Without a subcommand the effective settings are shown.`,
		Example: `  rgit config              # Show effective settings
  rgit config show --json  # Show as JSON
  rgit config init         # Create starter files`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, false)
		},
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force, yes bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create starter config and repos files",
		Args:  cobra.NoArgs,
		Long: `Create a commented settings file and an empty repos file.

Existing files are left alone unless --force is given. Overwriting asks
for confirmation when stdin is a terminal.`,
		Example: `  rgit config init       # Create missing files
  rgit config init -f    # Overwrite existing files
  rgit config init -fy   # Overwrite without asking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if force && !yes && isatty.IsTerminal(os.Stdin.Fd()) {
				ok, err := confirmOverwrite(cmd.Context())
				if err != nil || !ok {
					return err
				}
			}

			written, err := config.Init(home, force)
			if err != nil {
				return err
			}
			l := log.FromContext(cmd.Context())
			for _, path := range written {
				l.Printf("Created %s\n", displayPath(path))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask before overwriting")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// confirmOverwrite asks before config init replaces existing files.
// Returns true without asking if none of them exists.
func confirmOverwrite(ctx context.Context) (bool, error) {
	var existing []string
	for _, path := range []string{config.SettingsPath(home), config.DefaultReposPath(home)} {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, displayPath(path))
		}
	}
	if len(existing) == 0 {
		return true, nil
	}

	res, err := prompt.Confirm(ctx, os.Stderr, fmt.Sprintf("Overwrite %s?", strings.Join(existing, " and ")))
	if err != nil {
		return false, err
	}
	return res.Confirmed && !res.Cancelled, nil
}

// effectiveConfig is cfg with the repos file resolved.
func effectiveConfig() config.Config {
	c := *cfg
	c.ReposFile = cfg.ReposFilePath(home)
	return c
}

func showConfig(cmd *cobra.Command, jsonOutput bool) error {
	out := output.FromContext(cmd.Context())
	c := effectiveConfig()

	if jsonOutput {
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}

	if c.Path != "" {
		out.Printf("# %s\n", displayPath(c.Path))
	} else {
		out.Printf("# %s (not found, defaults)\n", displayPath(config.SettingsPath(home)))
	}
	return toml.NewEncoder(out.Writer()).Encode(c)
}
