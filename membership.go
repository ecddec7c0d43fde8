package webscale

import "context"

// DefaultEntryDescription is the description attached to entries created
// by AddMemberIfAbsent.
const DefaultEntryDescription = "Added by webscale client-go"

// MembershipService provides idempotent read-modify-write operations over
// a single address set's membership. The check-then-act sequence is a
// best-effort idempotence guard, not a transactional guarantee: another
// actor mutating the same set between the read and the write can still
// produce duplicates. The service does not lock, version, or use
// conditional-write semantics.
type MembershipService struct {
	client *Client
}

// NewMembershipService creates a membership service on top of the given
// client.
func NewMembershipService(c *Client) *MembershipService {
	return &MembershipService{client: c}
}

// IsMember reports whether address appears among the set's current entries.
// Matching is an exact, case-sensitive string comparison of the address
// field.
func (m *MembershipService) IsMember(ctx context.Context, id, address string) (bool, error) {
	entries, err := m.client.ListMembers(ctx, id)
	if err != nil {
		return false, err
	}
	return containsAddress(entries, address), nil
}

// IsBlocked reports whether address is a member of the given set. It is a
// pure alias of IsMember: whether the set is semantically a blocklist is
// determined entirely by which set id the caller supplies.
func (m *MembershipService) IsBlocked(ctx context.Context, id, address string) (bool, error) {
	return m.IsMember(ctx, id, address)
}

// IsThrottled reports whether address is a member of the given set. Like
// IsBlocked, it is a pure alias of IsMember.
func (m *MembershipService) IsThrottled(ctx context.Context, id, address string) (bool, error) {
	return m.IsMember(ctx, id, address)
}

// AddResult is the outcome of AddMemberIfAbsent. Added distinguishes the
// mutation outcome from the no-op outcome: when true, Set holds the
// server's confirmation of the new set state and Entries the collection
// that was written; when false, no PATCH was issued and Entries is the
// unchanged membership snapshot.
type AddResult struct {
	Added   bool
	Set     *AddressSet
	Entries []AddressEntry
}

// AddMemberIfAbsent adds address to the set unless it is already a member.
// The current member collection is fetched once and reused for both the
// membership check and the PATCH body, so the check and the write see the
// same snapshot. Safe to call repeatedly: absent external interference,
// the second call is a no-op.
func (m *MembershipService) AddMemberIfAbsent(ctx context.Context, id, address string) (*AddResult, error) {
	entries, err := m.client.ListMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	if containsAddress(entries, address) {
		return &AddResult{Added: false, Entries: entries}, nil
	}

	updated := make([]AddressEntry, 0, len(entries)+1)
	updated = append(updated, entries...)
	updated = append(updated, AddressEntry{
		Address:     address,
		Description: DefaultEntryDescription,
	})

	set, err := m.client.PatchMembers(ctx, id, updated)
	if err != nil {
		return nil, err
	}

	return &AddResult{Added: true, Set: set, Entries: updated}, nil
}

func containsAddress(entries []AddressEntry, address string) bool {
	for _, e := range entries {
		if e.Address == address {
			return true
		}
	}
	return false
}
