package cli

import (
	"crypto/rand"
	"dnsimple-client/dnsimple"
	. "dnsimple-client/internal"
	"encoding/hex"
	"errors"
	"github.com/Al2Klimov/FUeL.go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewOAuthCommand(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oauth",
		Short: "Obtain an access token via the OAuth authorization code flow.",
	}

	cmd.AddCommand(newOAuthAuthorizeURLCommand(g), newOAuthExchangeCommand(g))
	return cmd
}

type authorizeURL struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

func newOAuthAuthorizeURLCommand(g *globalOptions) *cobra.Command {
	var state string
	cmd := &cobra.Command{
		Use:   "authorize-url",
		Short: "Print the URL to send the user to for granting access.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireClientID(g.cfg); err != nil {
				return err
			}

			if state == "" {
				var err error
				if state, err = randomState(); err != nil {
					return err
				}
			}

			return g.print(authorizeURL{g.client.Oauth.AuthorizeURL(g.cfg.OAuth.ClientID, g.cfg.OAuth.RedirectURI, state), state})
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "State to pass through the flow. Random if not given.")
	return cmd
}

func newOAuthExchangeCommand(g *globalOptions) *cobra.Command {
	var state string
	cmd := &cobra.Command{
		Use:   "exchange CODE",
		Short: "Trade an authorization code for an access token and remember it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireClientID(g.cfg); err != nil {
				return err
			}

			resp, err := g.client.Oauth.ExchangeAuthorizationForToken(cmd.Context(), dnsimple.ExchangeAuthorizationRequest{
				Code:         args[0],
				ClientID:     g.cfg.OAuth.ClientID,
				ClientSecret: g.cfg.OAuth.ClientSecret,
				RedirectURI:  g.cfg.OAuth.RedirectURI,
				State:        state,
			})
			if err != nil {
				return err
			}

			logRateLimit(resp.ResponseMeta)

			g.state.AccessToken = resp.Data.Token
			g.state.AccountID = resp.Data.AccountID

			if err := SaveState(g.stateFile, g.state); err != nil {
				return err
			}

			log.WithField("account_id", resp.Data.AccountID).Info("obtained access token")
			return g.print(resp.Data)
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "State the authorization request was made with.")
	return cmd
}

func requireClientID(cfg *Config) fuel.ErrorWithStack {
	if cfg.OAuth.ClientID == "" {
		return fuel.AttachStackToError(errors.New("oauth.client_id missing"), 0)
	}

	return nil
}

func randomState() (string, fuel.ErrorWithStack) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fuel.AttachStackToError(err, 0)
	}

	return hex.EncodeToString(buf), nil
}
