package cli

import (
	"dnsimple-client/dnsimple"
	"github.com/spf13/cobra"
)

func NewWhoamiCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the user or account the token belongs to.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := g.client.Identity.Whoami(cmd.Context())
			if err != nil {
				return err
			}

			logRateLimit(resp.ResponseMeta)
			return g.print(resp.Data)
		},
	}
}

func NewAccountsCommand(g *globalOptions) *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts the user token has access to.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := paginate(opts, func(lo dnsimple.ListOptions) (*dnsimple.Response[[]dnsimple.Account], error) {
				return g.client.Accounts.ListAccounts(cmd.Context(), &lo)
			})
			if err != nil {
				return err
			}

			return g.print(accounts)
		},
	}

	opts.register(cmd)
	return cmd
}
