package cli

import (
	"dnsimple-client/dnsimple"
	"github.com/spf13/cobra"
)

func NewTldsCommand(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tlds",
		Short: "Show the TLDs available for registration.",
	}

	cmd.AddCommand(newTldsListCommand(g), newTldsGetCommand(g), newTldsAttributesCommand(g))
	return cmd
}

func newTldsListCommand(g *globalOptions) *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List TLDs.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tlds, err := paginate(opts, func(lo dnsimple.ListOptions) (*dnsimple.Response[[]dnsimple.Tld], error) {
				return g.client.Tlds.ListTlds(cmd.Context(), &lo)
			})
			if err != nil {
				return err
			}

			return g.print(tlds)
		},
	}

	opts.register(cmd)
	return cmd
}

func newTldsGetCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get TLD",
		Short: "Show a TLD.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := g.client.Tlds.GetTld(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			logRateLimit(resp.ResponseMeta)
			return g.print(resp.Data)
		},
	}
}

func newTldsAttributesCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "attributes TLD",
		Short: "Show the extended attributes a TLD requires or accepts.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := g.client.Tlds.GetTldExtendedAttributes(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			logRateLimit(resp.ResponseMeta)
			return g.print(resp.Data)
		},
	}
}
