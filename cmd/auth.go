package cmd

import (
	"fmt"
	"time"

	authadapter "github.com/gigamonkey/scheduler/internal/adapters/auth"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage calendar-service authorization",
	}

	cmd.AddCommand(newAuthLoginCmd(app), newAuthStatusCmd(app), newAuthLogoutCmd(app))

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authorize calendar access via browser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalendarLogin(cmd, app)
		},
	}
}

func newAuthStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored calendar credential status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := app.tokens.Get(cmd.Context(), calendarTokenKey)
			if err != nil {
				return fmt.Errorf("no calendar credential stored: %w", err)
			}

			tokens, err := decodeOAuthTokens(value)
			if err != nil {
				return err
			}

			switch {
			case tokens.ExpiresAt <= 0:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "credential stored (no expiry recorded)")
			case tokenExpiringSoon(tokens, app.now(), 5*time.Minute):
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "credential expired or expiring soon (at %s)\n", time.Unix(tokens.ExpiresAt, 0).Format(time.RFC3339))
			default:
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "credential valid until %s\n", time.Unix(tokens.ExpiresAt, 0).Format(time.RFC3339))
			}
			return err
		},
	}
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete the stored calendar credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.tokens.Delete(cmd.Context(), calendarTokenKey)
		},
	}
}

func runCalendarLogin(cmd *cobra.Command, app *app) error {
	if app.calendarLogin.ClientID == "" {
		return fmt.Errorf("SCHED_AUTH_CLIENT_ID is not set")
	}

	pkce, err := authadapter.NewPKCEPair()
	if err != nil {
		return fmt.Errorf("generate pkce: %w", err)
	}
	state, err := authadapter.NewState()
	if err != nil {
		return fmt.Errorf("generate oauth state: %w", err)
	}

	server, err := authadapter.StartCallbackServer(app.calendarLogin.ListenAddr, state)
	if err != nil {
		return fmt.Errorf("start callback server: %w", err)
	}

	authURL, err := authadapter.BuildAuthorizationURL(authadapter.AuthorizationRequest{
		AuthURL:       app.calendarLogin.AuthURL,
		ClientID:      app.calendarLogin.ClientID,
		RedirectURI:   server.RedirectURI(),
		Scopes:        authadapter.CalendarScopes,
		State:         state,
		CodeChallenge: pkce.Challenge,
	})
	if err != nil {
		_ = server.Close()
		return fmt.Errorf("build authorization url: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Open this URL to authorize calendar access:\n%s\n", authURL)

	code, err := server.WaitForCode(app.calendarLogin.Timeout)
	if err != nil {
		return fmt.Errorf("wait for oauth callback: %w", err)
	}

	tokens, err := authadapter.ExchangeCodeForTokens(app.httpClient, authadapter.TokenExchangeRequest{
		TokenURL:     app.calendarLogin.TokenURL,
		ClientID:     app.calendarLogin.ClientID,
		RedirectURI:  server.RedirectURI(),
		Code:         code,
		CodeVerifier: pkce.Verifier,
	})
	if err != nil {
		return fmt.Errorf("exchange code for tokens: %w", err)
	}

	value, err := encodeOAuthTokens(withCalculatedExpiry(oauthTokens{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    tokens.TokenType,
		Scope:        tokens.Scope,
		ExpiresIn:    tokens.ExpiresIn,
	}, app.now()))
	if err != nil {
		return err
	}

	if err := app.tokens.Put(cmd.Context(), calendarTokenKey, value); err != nil {
		return fmt.Errorf("store calendar credential: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Calendar access authorized")
	return nil
}
