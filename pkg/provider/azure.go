package provider

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

// azureRedirectURI is the custom-scheme callback registered with the OS.
// The host application's scheme handler delivers it back into the process;
// no loopback listener is involved.
const azureRedirectURI = "gitauth://oauth/callback"

// azureDevOpsResource is the well-known Azure DevOps application ID used to
// scope tokens to Azure Repos.
const azureDevOpsResource = "499b84ac-1321-427f-aa17-267ca6975798"

// AzureDefaultScopes returns the default scopes for Azure/Entra ID:
// Azure DevOps access plus offline_access so a refresh token is issued.
func AzureDefaultScopes() []string {
	return []string{azureDevOpsResource + "/.default", "offline_access"}
}

// AzureProvider implements Provider for Azure/Entra ID.
type AzureProvider struct {
	endpoint oauth2.Endpoint
	clientID string
	scopes   []string
}

// NewAzure creates an Azure/Entra ID provider.
// An empty Tenant defaults to "common", which accepts any directory account.
func NewAzure(cfg AzureConfig) (*AzureProvider, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}

	tenant := cfg.Tenant
	if tenant == "" {
		tenant = "common"
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = AzureDefaultScopes()
	}

	return &AzureProvider{
		clientID: cfg.ClientID,
		scopes:   scopes,
		endpoint: microsoft.AzureADEndpoint(tenant),
	}, nil
}

func (p *AzureProvider) Kind() Kind                 { return KindAzure }
func (p *AzureProvider) ClientID() string           { return p.clientID }
func (p *AzureProvider) ClientSecret() string       { return "" }
func (p *AzureProvider) Endpoint() oauth2.Endpoint  { return p.endpoint }
func (p *AzureProvider) DefaultScopes() []string    { return p.scopes }
func (p *AzureProvider) RedirectMode() RedirectMode { return RedirectCustomScheme }
func (p *AzureProvider) FixedPort() int             { return 0 }

// RedirectURI returns the fixed custom-scheme URI; the port is ignored.
func (p *AzureProvider) RedirectURI(int) string {
	return azureRedirectURI
}
