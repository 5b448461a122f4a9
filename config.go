package gitauth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/gitauth/pkg/provider"
)

// Config declares which providers a host application supports. A nil entry
// means the provider is unavailable; New requires at least one.
type Config struct {
	GitHub    *provider.GitHubConfig    `yaml:"github"`
	GitLab    *provider.GitLabConfig    `yaml:"gitlab"`
	Azure     *provider.AzureConfig     `yaml:"azure"`
	Bitbucket *provider.BitbucketConfig `yaml:"bitbucket"`
}

// LoadConfig reads a YAML config file:
//
//	github:
//	  client_id: Iv1.abcdef
//	gitlab:
//	  client_id: 123abc
//	  instance_url: https://git.example.com
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gitauth: read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("gitauth: parse config %q: %w", path, err)
	}
	return cfg, nil
}

// buildProviders constructs one strategy per configured provider.
func (c Config) buildProviders() (map[provider.Kind]provider.Provider, error) {
	providers := make(map[provider.Kind]provider.Provider)

	if c.GitHub != nil {
		p, err := provider.NewGitHub(*c.GitHub)
		if err != nil {
			return nil, err
		}
		providers[provider.KindGitHub] = p
	}
	if c.GitLab != nil {
		p, err := provider.NewGitLab(*c.GitLab)
		if err != nil {
			return nil, err
		}
		providers[provider.KindGitLab] = p
	}
	if c.Azure != nil {
		p, err := provider.NewAzure(*c.Azure)
		if err != nil {
			return nil, err
		}
		providers[provider.KindAzure] = p
	}
	if c.Bitbucket != nil {
		p, err := provider.NewBitbucket(*c.Bitbucket)
		if err != nil {
			return nil, err
		}
		providers[provider.KindBitbucket] = p
	}

	if len(providers) == 0 {
		return nil, ErrNoProviders
	}
	return providers, nil
}
