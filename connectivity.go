package webscale

import "context"

// ConnectionOK is the literal returned by TestConnection on success.
const ConnectionOK = "ok"

// authRemediation is returned instead of an error when a connectivity test
// fails with an authentication failure.
const authRemediation = "Authorization Error: make sure API Key is correctly set"

// TestConnection verifies API connectivity and authentication by listing
// address sets. On success it returns ConnectionOK. When the failure is
// classified as an authentication error it returns a human-readable
// remediation message instead of the error; any other failure propagates
// to the caller as fatal.
func TestConnection(ctx context.Context, c *Client) (string, error) {
	if _, err := c.ListSets(ctx); err != nil {
		if IsAuthError(err) {
			return authRemediation, nil
		}
		return "", err
	}
	return ConnectionOK, nil
}
