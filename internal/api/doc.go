// Package api provides HTTP client functionality for communicating with the
// Webscale address-set API. It handles authentication, request/response
// serialization, and error mapping.
//
// # Client Creation
//
// [NewClient] takes a [Config] with the base URL and optional API key. When
// an API key is configured every request carries an Authorization: Bearer
// header; when it is absent requests are sent unauthenticated, which is only
// useful against a test or sandbox endpoint.
//
// # Retry Behavior
//
// The client issues exactly one request per call by default: the observed
// service contract mandates no retry policy, so resilience is opt-in.
// Setting [Config.MaxRetries] enables retries for transient status codes
// (408, 429, 500, 502, 503, 504 unless overridden via [Config.RetryOn]),
// with a linearly growing delay between attempts.
//
// # Error Handling
//
// Failures surface as typed errors from the apierrors package:
//
//   - [apierrors.NetworkError]: the service could not be reached, or the
//     request timed out.
//   - [apierrors.APIError]: a non-2xx response, carrying the HTTP status
//     code and the server's message verbatim.
//
// Use errors.Is with the apierrors sentinels to classify failures:
//
//	if errors.Is(err, apierrors.ErrSetNotFound) {
//	    // Handle missing address set
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
