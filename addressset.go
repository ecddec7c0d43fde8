package webscale

import "github.com/webscale/client-go/internal/api"

// AddressSet is the configuration of a named address set. Only the id is
// interpreted client-side; every other field the server sends is preserved
// in Extra so a read-modify-write cycle loses nothing when the server-side
// schema grows.
type AddressSet = api.AddressSet

// AddressEntry is a single member of an address set: an IP address literal
// plus free-text description. Unknown server fields round-trip through
// Extra unchanged.
type AddressEntry = api.AddressEntry
