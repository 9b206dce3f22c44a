// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// ErrClearNotConfirmed is returned when accounts clear runs without --yes.
var ErrClearNotConfirmed = errors.New("clear forgets every account and its cached data; pass --yes to confirm")

func newAccountsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage remembered accounts",
	}

	cmd.AddCommand(newAccountsListCmd(rt))
	cmd.AddCommand(newAccountsRemoveCmd(rt))
	cmd.AddCommand(newAccountsClearCmd(rt))

	return cmd
}

func newAccountsListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List remembered accounts, active first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := rt.app.Services().SessionService.GetRememberedAccounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("list accounts: %w", err)
			}

			rows := make([][]string, 0, len(accounts))
			for _, a := range accounts {
				active := ""
				if a.IsActive {
					active = "*"
				}
				last := "-"
				if a.LastLoginEpochMs > 0 {
					last = time.UnixMilli(a.LastLoginEpochMs).Local().Format(time.DateTime)
				}
				rows = append(rows, []string{active, a.AccountKey, a.BaseSite, a.Username, last})
			}
			return writeTable(cmd.OutOrStdout(), []string{"ACTIVE", "KEY", "SITE", "USER", "LAST LOGIN"}, rows)
		},
	}
}

func newAccountsRemoveCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <account-key>",
		Short: "Forget an inactive account and its cached data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := rt.app.Services().SessionService.RemoveRememberedAccount(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("remove account: %w", err)
			}
			if !removed {
				return fmt.Errorf("account %q is active or unknown", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}

func newAccountsClearCmd(rt *runtime) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget every account and all cached data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return ErrClearNotConfirmed
			}
			forgot, err := rt.app.Services().SessionService.ForgetAllAccounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear accounts: %w", err)
			}
			if !forgot {
				fmt.Fprintln(cmd.OutOrStdout(), "no remembered accounts")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "forgot all accounts")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm forgetting every account")

	return cmd
}
