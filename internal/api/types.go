package api

import "encoding/json"

// AddressSet is the configuration of a named address set as returned by the
// service. Only the id is interpreted client-side; every other field the
// server sends is preserved in Extra so a read-modify-write cycle loses
// nothing when the server adds fields.
type AddressSet struct {
	ID    string
	Extra map[string]json.RawMessage
}

// UnmarshalJSON decodes the known id field and stashes everything else.
func (s *AddressSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &s.ID); err != nil {
			return err
		}
		delete(raw, "id")
	}
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

// MarshalJSON re-emits the id alongside the preserved extra fields.
func (s AddressSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.Extra)+1)
	for k, v := range s.Extra {
		out[k] = v
	}
	id, err := json.Marshal(s.ID)
	if err != nil {
		return nil, err
	}
	out["id"] = id
	return json.Marshal(out)
}

// AddressEntry is a single member of an address set: an IP address literal
// plus free-text description. Unknown fields round-trip through Extra.
type AddressEntry struct {
	Address     string
	Description string
	Extra       map[string]json.RawMessage
}

// UnmarshalJSON decodes the known fields and stashes everything else.
func (e *AddressEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["address"]; ok {
		if err := json.Unmarshal(v, &e.Address); err != nil {
			return err
		}
		delete(raw, "address")
	}
	if v, ok := raw["description"]; ok {
		if err := json.Unmarshal(v, &e.Description); err != nil {
			return err
		}
		delete(raw, "description")
	}
	if len(raw) > 0 {
		e.Extra = raw
	}
	return nil
}

// MarshalJSON re-emits the known fields alongside the preserved extras.
func (e AddressEntry) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(e.Extra)+2)
	for k, v := range e.Extra {
		out[k] = v
	}
	addr, err := json.Marshal(e.Address)
	if err != nil {
		return nil, err
	}
	out["address"] = addr
	if e.Description != "" {
		desc, err := json.Marshal(e.Description)
		if err != nil {
			return nil, err
		}
		out["description"] = desc
	}
	return json.Marshal(out)
}

// patchEntriesRequest is the PATCH /address-sets/{id} body. The entries
// collection replaces the server's view of the set's full membership.
type patchEntriesRequest struct {
	Entries []AddressEntry `json:"entries"`
}
