package cli

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewVanityCommand(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vanity",
		Short: "Switch vanity name servers of a domain on or off.",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "enable DOMAIN",
			Short: "Serve the domain from vanity name servers.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				account, err := g.account(cmd.Context())
				if err != nil {
					return err
				}

				resp, err := g.client.VanityNameServers.EnableVanityNameServers(cmd.Context(), account, args[0])
				if err != nil {
					return err
				}

				logRateLimit(resp.ResponseMeta)
				return g.print(resp.Data)
			},
		},
		&cobra.Command{
			Use:   "disable DOMAIN",
			Short: "Serve the domain from the default name servers.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				account, err := g.account(cmd.Context())
				if err != nil {
					return err
				}

				resp, err := g.client.VanityNameServers.DisableVanityNameServers(cmd.Context(), account, args[0])
				if err != nil {
					return err
				}

				logRateLimit(resp.ResponseMeta)
				log.WithField("domain", args[0]).Info("disabled vanity name servers")

				return nil
			},
		},
	)

	return cmd
}

func NewDelegationCommand(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delegation",
		Short: "Manage the name servers a registered domain delegates to.",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get DOMAIN",
			Short: "Show the delegation.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				account, err := g.account(cmd.Context())
				if err != nil {
					return err
				}

				resp, err := g.client.Registrar.GetDomainDelegation(cmd.Context(), account, args[0])
				if err != nil {
					return err
				}

				logRateLimit(resp.ResponseMeta)
				return g.print(resp.Data)
			},
		},
		&cobra.Command{
			Use:   "change DOMAIN NAME-SERVER...",
			Short: "Delegate to the given name servers.",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				account, err := g.account(cmd.Context())
				if err != nil {
					return err
				}

				resp, err := g.client.Registrar.ChangeDomainDelegation(cmd.Context(), account, args[0], args[1:])
				if err != nil {
					return err
				}

				logRateLimit(resp.ResponseMeta)
				return g.print(resp.Data)
			},
		},
		&cobra.Command{
			Use:   "to-vanity DOMAIN NAME-SERVER...",
			Short: "Delegate to vanity name servers with the given names.",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				account, err := g.account(cmd.Context())
				if err != nil {
					return err
				}

				resp, err := g.client.Registrar.ChangeDomainDelegationToVanity(cmd.Context(), account, args[0], args[1:])
				if err != nil {
					return err
				}

				logRateLimit(resp.ResponseMeta)
				return g.print(resp.Data)
			},
		},
		&cobra.Command{
			Use:   "from-vanity DOMAIN",
			Short: "Delegate to the default name servers again.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				account, err := g.account(cmd.Context())
				if err != nil {
					return err
				}

				resp, err := g.client.Registrar.ChangeDomainDelegationFromVanity(cmd.Context(), account, args[0])
				if err != nil {
					return err
				}

				logRateLimit(resp.ResponseMeta)
				log.WithField("domain", args[0]).Info("delegating to the default name servers")

				return nil
			},
		},
	)

	return cmd
}
