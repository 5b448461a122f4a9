package gitauth_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gitauth"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "gitauth.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
github:
  client_id: Iv1.github
  client_secret: ghs_secret
gitlab:
  client_id: gl-id
  instance_url: https://git.example.com
azure:
  client_id: az-id
  tenant: contoso
bitbucket:
  client_id: bb-id
  port: 3999
`), 0o600))

		cfg, err := gitauth.LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "Iv1.github", cfg.GitHub.ClientID)
		require.Equal(t, "ghs_secret", cfg.GitHub.ClientSecret)
		require.Equal(t, "https://git.example.com", cfg.GitLab.InstanceURL)
		require.Equal(t, "contoso", cfg.Azure.Tenant)
		require.Equal(t, 3999, cfg.Bitbucket.Port)

		svc, err := gitauth.New(cfg)
		require.NoError(t, err)
		require.NotNil(t, svc)
	})

	t.Run("partial config leaves others nil", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "gitauth.yaml")
		require.NoError(t, os.WriteFile(path, []byte("github:\n  client_id: only\n"), 0o600))

		cfg, err := gitauth.LoadConfig(path)
		require.NoError(t, err)
		require.NotNil(t, cfg.GitHub)
		require.Nil(t, cfg.GitLab)
		require.Nil(t, cfg.Azure)
		require.Nil(t, cfg.Bitbucket)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := gitauth.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("github: ["), 0o600))

		_, err := gitauth.LoadConfig(path)
		require.Error(t, err)
	})
}
