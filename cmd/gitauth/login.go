package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gitauth"
	"github.com/dmitrymomot/gitauth/pkg/browser"
	"github.com/dmitrymomot/gitauth/pkg/logger"
	"github.com/dmitrymomot/gitauth/pkg/provider"
	"github.com/dmitrymomot/gitauth/pkg/tokens"
)

func newLoginCmd(root *rootFlags) *cobra.Command {
	var (
		providerName string
		timeout      time.Duration
		noBrowser    bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Run an interactive OAuth login",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := provider.ParseKind(providerName)
			if err != nil {
				return err
			}

			svc, err := buildService(root, kind, gitauth.WithWaitTimeout(timeout))
			if err != nil {
				return err
			}
			return runLogin(cmd.Context(), svc, kind, noBrowser)
		},
	}
	cmd.Flags().StringVar(&providerName, "provider", "", "provider: github, gitlab, azure or bitbucket")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "how long to wait for the browser callback")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "print the authorize URL instead of opening a browser")
	_ = cmd.MarkFlagRequired("provider")
	return cmd
}

func runLogin(ctx context.Context, svc *gitauth.Service, kind provider.Kind, noBrowser bool) error {
	start, err := svc.StartLogin(ctx, kind)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Complete the login in your browser:\n%s\n", start.AuthorizeURL)
	if !noBrowser {
		// Best effort: the URL is already printed for manual use.
		_ = browser.Open(start.AuthorizeURL)
	}

	if start.Port == 0 {
		return fmt.Errorf("provider %s uses a custom-scheme redirect that only the desktop app can receive", kind)
	}

	code, err := svc.WaitForCallback(ctx, start.Port, start.State)
	if err != nil {
		return err
	}

	resp, err := svc.ExchangeCode(ctx, kind, code, start.Verifier, start.RedirectURI)
	if err != nil {
		return err
	}
	printTokens(resp)
	return nil
}

func newRefreshCmd(root *rootFlags) *cobra.Command {
	var (
		providerName string
		refreshToken string
	)

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Exchange a refresh token for a new access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := provider.ParseKind(providerName)
			if err != nil {
				return err
			}

			svc, err := buildService(root, kind)
			if err != nil {
				return err
			}
			resp, err := svc.RefreshToken(cmd.Context(), kind, refreshToken)
			if err != nil {
				return err
			}
			printTokens(resp)
			return nil
		},
	}
	cmd.Flags().StringVar(&providerName, "provider", "", "provider: github, gitlab, azure or bitbucket")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "refresh token to redeem")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("refresh-token")
	return cmd
}

func buildService(root *rootFlags, kind provider.Kind, opts ...gitauth.Option) (*gitauth.Service, error) {
	cfg, err := loadConfig(root.configPath, kind)
	if err != nil {
		return nil, err
	}

	log := logger.NewNope()
	if root.verbose {
		log = logger.New()
	}
	return gitauth.New(cfg, append(opts, gitauth.WithLogger(log))...)
}

// loadConfig reads the YAML file when one is given; otherwise it parses the
// GITAUTH_* environment variables for the requested provider only, so a
// github login does not demand gitlab credentials.
func loadConfig(path string, kind provider.Kind) (gitauth.Config, error) {
	if path != "" {
		return gitauth.LoadConfig(path)
	}

	var cfg gitauth.Config
	switch kind {
	case provider.KindGitHub:
		c, err := env.ParseAs[provider.GitHubConfig]()
		if err != nil {
			return cfg, err
		}
		cfg.GitHub = &c
	case provider.KindGitLab:
		c, err := env.ParseAs[provider.GitLabConfig]()
		if err != nil {
			return cfg, err
		}
		cfg.GitLab = &c
	case provider.KindAzure:
		c, err := env.ParseAs[provider.AzureConfig]()
		if err != nil {
			return cfg, err
		}
		cfg.Azure = &c
	case provider.KindBitbucket:
		c, err := env.ParseAs[provider.BitbucketConfig]()
		if err != nil {
			return cfg, err
		}
		cfg.Bitbucket = &c
	}
	return cfg, nil
}

func printTokens(resp *tokens.Response) {
	fmt.Println(resp.AccessToken)
	fmt.Fprintf(os.Stderr, "\naccess_token (masked): %s\n", tokens.Mask(resp.AccessToken))
	if resp.RefreshToken != "" {
		fmt.Fprintf(os.Stderr, "refresh_token (masked): %s\n", tokens.Mask(resp.RefreshToken))
	}
	if resp.ExpiresIn > 0 {
		fmt.Fprintf(os.Stderr, "expires_in: %ds\n", resp.ExpiresIn)
	}
}
