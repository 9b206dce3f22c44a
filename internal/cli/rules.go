// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// ErrImportNotConfirmed is returned when an import runs without --yes.
var ErrImportNotConfirmed = errors.New("import replaces every rule; pass --yes to confirm")

func newRulesCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage text transform rules",
	}

	cmd.AddCommand(newRulesListCmd(rt))
	cmd.AddCommand(newRulesExportCmd(rt))
	cmd.AddCommand(newRulesImportCmd(rt))
	cmd.AddCommand(newRulesEnabledCmd(rt))

	return cmd
}

func newRulesListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := rt.app.Services().TextTransformService.Rules()
			rows := make([][]string, 0, len(rules))
			for _, r := range rules {
				caseMode := "exact"
				if r.IgnoreCase {
					caseMode = "ignore"
				}
				rows = append(rows, []string{
					r.ID, string(r.Type), strconv.FormatBool(r.Enabled), caseMode,
					strconv.Quote(r.Matcher), strconv.Quote(r.Replacement), r.Note,
				})
			}
			return writeTable(cmd.OutOrStdout(), []string{"ID", "TYPE", "ON", "CASE", "MATCHER", "REPLACEMENT", "NOTE"}, rows)
		},
	}
}

func newRulesExportCmd(rt *runtime) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the rules as a versioned JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := rt.app.Services().TextTransformService.ExportRulesJSON()
			if err != nil {
				return fmt.Errorf("export rules: %w", err)
			}
			if out == "" || out == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), data)
				return err
			}
			return os.WriteFile(out, []byte(data+"\n"), 0o600)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")

	return cmd
}

func newRulesImportCmd(rt *runtime) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace every rule with the contents of a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return ErrImportNotConfirmed
			}

			var (
				raw []byte
				err error
			)
			if args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}

			n, err := rt.app.Services().TextTransformService.ImportRulesJSON(cmd.Context(), string(raw))
			if err != nil {
				return fmt.Errorf("import rules: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d rules\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm replacing the current rules")

	return cmd
}

func newRulesEnabledCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:       "enabled [true|false]",
		Short:     "Show or set the global transform switch",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"true", "false"},
		RunE: func(cmd *cobra.Command, args []string) error {
			transform := rt.app.Services().TextTransformService
			if len(args) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), transform.Enabled())
				return err
			}

			enabled, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			if err = transform.SetEnabled(cmd.Context(), enabled); err != nil {
				return fmt.Errorf("set enabled: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), enabled)
			return err
		},
	}
}
