package cli

import (
	"dnsimple-client/dnsimple"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewDomainsCommand(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "Manage the domains of an account.",
	}

	cmd.AddCommand(
		newDomainsListCommand(g),
		newDomainsGetCommand(g),
		newDomainsCreateCommand(g),
		newDomainsDeleteCommand(g),
	)

	return cmd
}

type domainsListOptions struct {
	listOptions

	nameLike     string
	registrantID int64
}

func newDomainsListCommand(g *globalOptions) *cobra.Command {
	opts := domainsListOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List domains.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := g.account(cmd.Context())
			if err != nil {
				return err
			}

			domains, err := paginate(opts.listOptions, func(lo dnsimple.ListOptions) (*dnsimple.Response[[]dnsimple.Domain], error) {
				return g.client.Domains.ListDomains(cmd.Context(), account, &dnsimple.DomainListOptions{
					ListOptions: lo, NameLike: opts.nameLike, RegistrantID: opts.registrantID,
				})
			})
			if err != nil {
				return err
			}

			return g.print(domains)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.nameLike, "name-like", "", "Only domains whose name contains this.")
	cmd.Flags().Int64Var(&opts.registrantID, "registrant", 0, "Only domains registered to this contact ID.")

	return cmd
}

func newDomainsGetCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get DOMAIN",
		Short: "Show a domain by name or ID.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := g.account(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := g.client.Domains.GetDomain(cmd.Context(), account, args[0])
			if err != nil {
				return err
			}

			logRateLimit(resp.ResponseMeta)
			return g.print(resp.Data)
		},
	}
}

func newDomainsCreateCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Add a domain to the account without registering it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := g.account(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := g.client.Domains.CreateDomain(cmd.Context(), account, args[0])
			if err != nil {
				return err
			}

			logRateLimit(resp.ResponseMeta)
			return g.print(resp.Data)
		},
	}
}

func newDomainsDeleteCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete DOMAIN",
		Aliases: []string{"rm"},
		Short:   "Delete a domain and all of its records.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := g.account(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := g.client.Domains.DeleteDomain(cmd.Context(), account, args[0])
			if err != nil {
				return err
			}

			logRateLimit(resp.ResponseMeta)
			log.WithFields(log.Fields{"account_id": account, "domain": args[0]}).Info("deleted domain")

			return nil
		},
	}
}
