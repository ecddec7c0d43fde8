package webscale

import (
	"context"

	"github.com/webscale/client-go/internal/api"
)

// Client is the Webscale address-set client. It is stateless apart from its
// immutable connection configuration: each operation issues one HTTPS
// request and returns a typed result.
type Client struct {
	apiClient *api.Client
}

// New creates a new Webscale client for the given base URL.
//
// When no API key is configured via WithAPIKey, requests are sent
// unauthenticated, which is only useful against a test or sandbox endpoint.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	cfg := &clientConfig{
		baseURL: baseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     cfg.apiKey,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		MaxRetries: cfg.retries,
		RetryOn:    cfg.retryOn,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{apiClient: apiClient}, nil
}

// Membership returns the membership service bound to this client.
func (c *Client) Membership() *MembershipService {
	return NewMembershipService(c)
}

// ListSets returns all address sets associated with the caller's account.
func (c *Client) ListSets(ctx context.Context) ([]AddressSet, error) {
	sets, err := c.apiClient.ListAddressSets(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return sets, nil
}

// GetSet returns the configuration of the specified address set. The id
// must be a non-empty identifier previously observed from ListSets; its
// format is not validated client-side, the server is authoritative and
// unknown ids surface as ErrSetNotFound.
func (c *Client) GetSet(ctx context.Context, id string) (*AddressSet, error) {
	set, err := c.apiClient.GetAddressSet(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return set, nil
}

// ListMembers returns the member addresses of the specified address set,
// in the order the server returns them.
func (c *Client) ListMembers(ctx context.Context, id string) ([]AddressEntry, error) {
	entries, err := c.apiClient.ListAddressSetEntries(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return entries, nil
}

// PatchMembers replaces the full member collection of the specified address
// set. The entries are the complete desired collection, not a delta: a
// caller extending a set supplies the existing entries plus the new ones.
// Returns the updated set configuration as confirmation.
func (c *Client) PatchMembers(ctx context.Context, id string, entries []AddressEntry) (*AddressSet, error) {
	set, err := c.apiClient.PatchAddressSetEntries(ctx, id, entries)
	if err != nil {
		return nil, wrapError(err)
	}
	return set, nil
}
