package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/webscale/client-go/internal/apierrors"
)

// ListAddressSets returns all address sets associated with the caller's
// account.
func (c *Client) ListAddressSets(ctx context.Context) ([]AddressSet, error) {
	var result []AddressSet
	if err := c.Do(ctx, http.MethodGet, "/address-sets", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAddressSet returns the configuration of a single address set.
func (c *Client) GetAddressSet(ctx context.Context, id string) (*AddressSet, error) {
	if id == "" {
		return nil, apierrors.ErrEmptySetID
	}
	var result AddressSet
	path := fmt.Sprintf("/address-sets/%s", url.PathEscape(id))
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAddressSetEntries returns the member addresses of an address set, in
// the order the server returns them.
func (c *Client) ListAddressSetEntries(ctx context.Context, id string) ([]AddressEntry, error) {
	if id == "" {
		return nil, apierrors.ErrEmptySetID
	}
	var result []AddressEntry
	path := fmt.Sprintf("/address-sets/%s/addresses", url.PathEscape(id))
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// PatchAddressSetEntries replaces the full member collection of an address
// set. The supplied entries are the complete desired collection, not a
// delta. Returns the updated set configuration as confirmation.
func (c *Client) PatchAddressSetEntries(ctx context.Context, id string, entries []AddressEntry) (*AddressSet, error) {
	if id == "" {
		return nil, apierrors.ErrEmptySetID
	}
	var result AddressSet
	path := fmt.Sprintf("/address-sets/%s", url.PathEscape(id))
	if err := c.Do(ctx, http.MethodPatch, path, patchEntriesRequest{Entries: entries}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
