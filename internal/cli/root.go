package cli

import (
	"context"
	"dnsimple-client/dnsimple"
	. "dnsimple-client/internal"
	"errors"
	"github.com/Al2Klimov/FUeL.go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io"
)

// globalOptions is shared by all commands. The fields below the flags are
// filled in by the root command before any subcommand runs.
type globalOptions struct {
	configFile string
	stateFile  string
	output     string
	accountID  int64

	cfg    *Config
	state  *State
	client *dnsimple.Client
	out    io.Writer
}

func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "dnsimple-client",
		Short:         "Manage DNSimple accounts, domains and name servers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.out = cmd.OutOrStdout()
			return opts.setup()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "dnsimple-client.yml", "Path to the configuration file.")
	cmd.PersistentFlags().StringVar(&opts.stateFile, "state-file", "dnsimple-client.json", "Path to the state file.")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", string(OutputJSON), "Output format: json or yaml.")
	cmd.PersistentFlags().Int64Var(&opts.accountID, "account", 0, "Account ID, overrides the configured one.")
	_ = cmd.MarkPersistentFlagFilename("config", "yml", "yaml")
	_ = cmd.MarkPersistentFlagFilename("state-file", "json")

	cmd.AddCommand(
		NewWhoamiCommand(opts),
		NewAccountsCommand(opts),
		NewDomainsCommand(opts),
		NewCollaboratorsCommand(opts),
		NewTldsCommand(opts),
		NewVanityCommand(opts),
		NewDelegationCommand(opts),
		NewOAuthCommand(opts),
	)

	return cmd
}

func (g *globalOptions) setup() fuel.ErrorWithStack {
	if err := OutputFormat(g.output).Validate(); err != nil {
		return err
	}

	cfg, err := LoadConfig(g.configFile)
	if err != nil {
		return err
	}

	log.SetLevel(cfg.Level())

	state, err := LoadState(g.stateFile)
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.state = state
	g.client = dnsimple.NewClient(cfg.ClientConfig(state.AccessToken))

	return nil
}

func (g *globalOptions) print(v interface{}) error {
	return OutputFormat(g.output).Print(g.out, v)
}

// account resolves the account to act on: --account, then the config, then
// the state and finally the account the token belongs to.
func (g *globalOptions) account(ctx context.Context) (int64, error) {
	for _, id := range []int64{g.accountID, g.cfg.AccountID, g.state.AccountID} {
		if id > 0 {
			return id, nil
		}
	}

	resp, err := g.client.Identity.Whoami(ctx)
	if err != nil {
		return 0, err
	}

	if resp.Data.Account == nil {
		return 0, fuel.AttachStackToError(errors.New("no account ID given and the token isn't an account token"), 0)
	}

	log.WithField("account_id", resp.Data.Account.ID).Debug("using the account the token belongs to")
	return resp.Data.Account.ID, nil
}

func logRateLimit(meta dnsimple.ResponseMeta) {
	log.WithFields(log.Fields{
		"status": meta.StatusCode, "limit": meta.RateLimit.Limit, "remaining": meta.RateLimit.Remaining,
	}).Debug("rate limit")
}
