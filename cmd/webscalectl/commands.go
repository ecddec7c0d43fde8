package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	webscale "github.com/webscale/client-go"
	"github.com/webscale/client-go/internal/render"
)

func newSetsCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List the address sets associated with the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cfg)
			defer cancel()

			sets, err := client.ListSets(ctx)
			if err != nil {
				return err
			}
			return render.Sets(sets).Write(os.Stdout)
		},
	}
}

func newSetCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "set <id>",
		Short: "Show the configuration of an address set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cfg)
			defer cancel()

			set, err := client.GetSet(ctx, args[0])
			if err != nil {
				return err
			}
			return render.SetConfig(set).Write(os.Stdout)
		},
	}
}

func newMembersCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "members <id>",
		Short: "List the member addresses of an address set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cfg)
			defer cancel()

			entries, err := client.ListMembers(ctx, args[0])
			if err != nil {
				return err
			}
			return render.Entries(entries).Write(os.Stdout)
		},
	}
}

// newIsMemberCommand builds a membership-query command. The is-blocked and
// is-throttled variants are the same query: whether a set is a blocklist or
// a throttle list is decided by which set id the caller supplies.
func newIsMemberCommand(cfg *Config, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id> <address>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cfg)
			defer cancel()

			member, err := client.Membership().IsMember(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			printBool(member)
			return nil
		},
	}
}

func newAddMemberCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add-member <id> <address>",
		Short: "Add an address to an address set unless it is already a member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cfg)
			defer cancel()

			result, err := client.Membership().AddMemberIfAbsent(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			if !result.Added {
				logger.Info().
					Str("address", args[1]).
					Str("set", args[0]).
					Msg("address is already a member of the address set")
				return render.Entries(result.Entries).Write(os.Stdout)
			}
			return render.SetConfig(result.Set).Write(os.Stdout)
		},
	}
}

func newTestCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Test API connectivity and authentication",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cfg)
			defer cancel()

			msg, err := webscale.TestConnection(ctx, client)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}
