package provider

// GitHubConfig holds GitHub OAuth configuration.
type GitHubConfig struct {
	ClientID     string   `env:"GITAUTH_GITHUB_CLIENT_ID,required" yaml:"client_id"`
	ClientSecret string   `env:"GITAUTH_GITHUB_CLIENT_SECRET" yaml:"client_secret"`
	Scopes       []string `env:"GITAUTH_GITHUB_SCOPES" envSeparator:"," yaml:"scopes"`
}

// GitLabConfig holds GitLab OAuth configuration.
// InstanceURL points at a self-hosted instance; it defaults to gitlab.com.
type GitLabConfig struct {
	ClientID    string   `env:"GITAUTH_GITLAB_CLIENT_ID,required" yaml:"client_id"`
	InstanceURL string   `env:"GITAUTH_GITLAB_INSTANCE_URL" envDefault:"https://gitlab.com" yaml:"instance_url"`
	Scopes      []string `env:"GITAUTH_GITLAB_SCOPES" envSeparator:"," yaml:"scopes"`
}

// AzureConfig holds Azure/Entra ID OAuth configuration.
// Tenant selects the directory endpoint; "common" accepts any account.
type AzureConfig struct {
	ClientID string   `env:"GITAUTH_AZURE_CLIENT_ID,required" yaml:"client_id"`
	Tenant   string   `env:"GITAUTH_AZURE_TENANT" envDefault:"common" yaml:"tenant"`
	Scopes   []string `env:"GITAUTH_AZURE_SCOPES" envSeparator:"," yaml:"scopes"`
}

// BitbucketConfig holds Bitbucket OAuth configuration.
// Port is the single callback port registered with the Bitbucket OAuth
// consumer; Bitbucket allows exactly one callback URL per consumer.
type BitbucketConfig struct {
	ClientID     string   `env:"GITAUTH_BITBUCKET_CLIENT_ID,required" yaml:"client_id"`
	ClientSecret string   `env:"GITAUTH_BITBUCKET_CLIENT_SECRET" yaml:"client_secret"`
	Port         int      `env:"GITAUTH_BITBUCKET_CALLBACK_PORT" envDefault:"8976" yaml:"port"`
	Scopes       []string `env:"GITAUTH_BITBUCKET_SCOPES" envSeparator:"," yaml:"scopes"`
}
