package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/rgit/internal/doctor"
	"github.com/raphi011/rgit/internal/output"
)

func newDoctorCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "doctor",
		Short:       "Diagnose the repos file and environment",
		GroupID:     GroupConfig,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoGit: ""},
		Long: `Diagnose why repositories are missing from "rgit status".

Checks:
- git is available in PATH
- every include rule matches at least one repository
- include rules do not only match plain directories
- every exclude rule removes something
- every resolved repository can be opened by git

Doctor only reports; edit the repos file to fix the issues it finds.`,
		Example: `  rgit doctor          # Print diagnostics
  rgit doctor --json   # Machine-readable report`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			path, rules, err := loadRules(ctx)
			if err != nil {
				return err
			}

			params := doctor.Params{
				ReposFile: displayPath(path),
				Rules:     rules,
				Options:   resolveOptions(path),
				Backend:   backend,
				Jobs:      cfg.Jobs,
			}

			var report doctor.Report
			if jsonOutput {
				report, err = doctor.Check(ctx, params)
				if err != nil {
					return err
				}
				if report.Issues == nil {
					report.Issues = []doctor.Issue{}
				}
				enc := json.NewEncoder(output.FromContext(ctx).Writer())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				report, err = doctor.Run(ctx, params)
				if err != nil {
					return err
				}
			}

			if n := len(report.Issues); n > 0 {
				return fmt.Errorf("%d issues found", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
