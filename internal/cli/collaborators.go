package cli

import (
	"dnsimple-client/dnsimple"
	"github.com/Al2Klimov/FUeL.go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"strconv"
)

func NewCollaboratorsCommand(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collaborators",
		Short: "Manage the users a domain is shared with.",
	}

	cmd.AddCommand(
		newCollaboratorsListCommand(g),
		newCollaboratorsAddCommand(g),
		newCollaboratorsRemoveCommand(g),
	)

	return cmd
}

func newCollaboratorsListCommand(g *globalOptions) *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:     "list DOMAIN",
		Aliases: []string{"ls"},
		Short:   "List the collaborators of a domain.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := g.account(cmd.Context())
			if err != nil {
				return err
			}

			collaborators, err := paginate(opts, func(lo dnsimple.ListOptions) (*dnsimple.Response[[]dnsimple.Collaborator], error) {
				return g.client.Domains.ListCollaborators(cmd.Context(), account, args[0], &lo)
			})
			if err != nil {
				return err
			}

			return g.print(collaborators)
		},
	}

	opts.register(cmd)
	return cmd
}

func newCollaboratorsAddCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add DOMAIN EMAIL",
		Short: "Share a domain. Unknown addresses get an invitation.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := g.account(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := g.client.Domains.AddCollaborator(cmd.Context(), account, args[0], args[1])
			if err != nil {
				return err
			}

			logRateLimit(resp.ResponseMeta)
			return g.print(resp.Data)
		},
	}
}

func newCollaboratorsRemoveCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "remove DOMAIN COLLABORATOR-ID",
		Aliases: []string{"rm"},
		Short:   "Stop sharing a domain with a collaborator.",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fuel.AttachStackToError(err, 0)
			}

			account, err := g.account(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := g.client.Domains.RemoveCollaborator(cmd.Context(), account, args[0], id)
			if err != nil {
				return err
			}

			logRateLimit(resp.ResponseMeta)
			log.WithFields(log.Fields{"domain": args[0], "collaborator_id": id}).Info("removed collaborator")

			return nil
		},
	}
}
