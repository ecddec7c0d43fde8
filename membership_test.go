package webscale

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeSetServer is a minimal in-memory address-set service for exercising
// the read-then-conditional-write sequence.
type fakeSetServer struct {
	mu      sync.Mutex
	entries map[string][]map[string]any
	patches int
}

func newFakeSetServer(entries map[string][]map[string]any) *fakeSetServer {
	return &fakeSetServer{entries: entries}
}

func (f *fakeSetServer) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		var id string
		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/addresses"):
			id = strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/address-sets/"), "/addresses")
			entries, ok := f.entries[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"error": "address set not found"}`)
				return
			}
			json.NewEncoder(w).Encode(entries)

		case r.Method == http.MethodPatch:
			id = strings.TrimPrefix(r.URL.Path, "/address-sets/")
			if _, ok := f.entries[id]; !ok {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"error": "address set not found"}`)
				return
			}
			var body struct {
				Entries []map[string]any `json:"entries"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode PATCH body: %v", err)
			}
			f.entries[id] = body.Entries
			f.patches++
			fmt.Fprintf(w, `{"id": %q, "size": %d}`, id, len(body.Entries))

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func (f *fakeSetServer) patchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.patches
}

func (f *fakeSetServer) setEntries(id string) []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[id]
}

func newMembershipFixture(t *testing.T, entries map[string][]map[string]any) (*MembershipService, *fakeSetServer) {
	t.Helper()
	fake := newFakeSetServer(entries)
	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	client, err := New(server.URL, WithAPIKey("test-key"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client.Membership(), fake
}

func TestIsMember(t *testing.T) {
	svc, _ := newMembershipFixture(t, map[string][]map[string]any{
		"blocklist-1": {
			{"address": "1.2.3.4", "description": "scanner"},
			{"address": "5.6.7.8", "description": "bot"},
		},
	})

	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"present", "1.2.3.4", true},
		{"absent", "9.9.9.9", false},
		{"exact match is case-sensitive on the full string", "1.2.3.40", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.IsMember(context.Background(), "blocklist-1", tt.address)
			if err != nil {
				t.Fatalf("IsMember() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsMember(%q) = %v, want %v", tt.address, got, tt.want)
			}
		})
	}
}

func TestIsBlockedAndIsThrottled_AliasIsMember(t *testing.T) {
	svc, _ := newMembershipFixture(t, map[string][]map[string]any{
		"blocklist-1": {{"address": "1.2.3.4"}},
	})

	for _, address := range []string{"1.2.3.4", "9.9.9.9"} {
		member, err := svc.IsMember(context.Background(), "blocklist-1", address)
		if err != nil {
			t.Fatalf("IsMember() error = %v", err)
		}
		blocked, err := svc.IsBlocked(context.Background(), "blocklist-1", address)
		if err != nil {
			t.Fatalf("IsBlocked() error = %v", err)
		}
		throttled, err := svc.IsThrottled(context.Background(), "blocklist-1", address)
		if err != nil {
			t.Fatalf("IsThrottled() error = %v", err)
		}
		if blocked != member || throttled != member {
			t.Errorf("address %s: member=%v blocked=%v throttled=%v, want all equal",
				address, member, blocked, throttled)
		}
	}
}

func TestAddMemberIfAbsent_AddsNewAddress(t *testing.T) {
	svc, fake := newMembershipFixture(t, map[string][]map[string]any{
		"blocklist-1": {{"address": "1.2.3.4", "description": "scanner"}},
	})

	result, err := svc.AddMemberIfAbsent(context.Background(), "blocklist-1", "5.6.7.8")
	if err != nil {
		t.Fatalf("AddMemberIfAbsent() error = %v", err)
	}

	if !result.Added {
		t.Error("Added = false, want true")
	}
	if result.Set == nil || result.Set.ID != "blocklist-1" {
		t.Errorf("Set = %+v, want server confirmation for blocklist-1", result.Set)
	}
	if fake.patchCount() != 1 {
		t.Errorf("patch count = %d, want 1", fake.patchCount())
	}

	// The PATCH carries the full collection: existing entry plus the new
	// one appended, order preserved.
	entries := fake.setEntries("blocklist-1")
	if len(entries) != 2 {
		t.Fatalf("server entries = %d, want 2", len(entries))
	}
	if entries[0]["address"] != "1.2.3.4" || entries[0]["description"] != "scanner" {
		t.Errorf("entries[0] = %v, want existing entry preserved first", entries[0])
	}
	if entries[1]["address"] != "5.6.7.8" {
		t.Errorf("entries[1].address = %v, want 5.6.7.8", entries[1]["address"])
	}
	if entries[1]["description"] != DefaultEntryDescription {
		t.Errorf("entries[1].description = %v, want %q", entries[1]["description"], DefaultEntryDescription)
	}
}

func TestAddMemberIfAbsent_NoOpWhenPresent(t *testing.T) {
	svc, fake := newMembershipFixture(t, map[string][]map[string]any{
		"blocklist-1": {{"address": "1.2.3.4", "description": "scanner"}},
	})

	result, err := svc.AddMemberIfAbsent(context.Background(), "blocklist-1", "1.2.3.4")
	if err != nil {
		t.Fatalf("AddMemberIfAbsent() error = %v", err)
	}

	if result.Added {
		t.Error("Added = true, want false for existing member")
	}
	if result.Set != nil {
		t.Errorf("Set = %+v, want nil for no-op outcome", result.Set)
	}
	if len(result.Entries) != 1 || result.Entries[0].Address != "1.2.3.4" {
		t.Errorf("Entries = %+v, want unchanged membership snapshot", result.Entries)
	}
	if fake.patchCount() != 0 {
		t.Errorf("patch count = %d, want 0 (no PATCH issued)", fake.patchCount())
	}
}

func TestAddMemberIfAbsent_Idempotent(t *testing.T) {
	svc, fake := newMembershipFixture(t, map[string][]map[string]any{
		"blocklist-1": {{"address": "1.2.3.4"}},
	})

	first, err := svc.AddMemberIfAbsent(context.Background(), "blocklist-1", "5.6.7.8")
	if err != nil {
		t.Fatalf("first AddMemberIfAbsent() error = %v", err)
	}
	second, err := svc.AddMemberIfAbsent(context.Background(), "blocklist-1", "5.6.7.8")
	if err != nil {
		t.Fatalf("second AddMemberIfAbsent() error = %v", err)
	}

	if !first.Added {
		t.Error("first call: Added = false, want true")
	}
	if second.Added {
		t.Error("second call: Added = true, want false")
	}
	if fake.patchCount() != 1 {
		t.Errorf("patch count = %d, want exactly 1", fake.patchCount())
	}

	count := 0
	for _, e := range fake.setEntries("blocklist-1") {
		if e["address"] == "5.6.7.8" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("entries with address 5.6.7.8 = %d, want exactly 1", count)
	}
}

func TestAddMemberIfAbsent_PreservesExtraFieldsOnPatch(t *testing.T) {
	svc, fake := newMembershipFixture(t, map[string][]map[string]any{
		"blocklist-1": {
			{"address": "1.2.3.4", "description": "scanner", "addedAt": "2024-01-01T00:00:00Z"},
		},
	})

	if _, err := svc.AddMemberIfAbsent(context.Background(), "blocklist-1", "5.6.7.8"); err != nil {
		t.Fatalf("AddMemberIfAbsent() error = %v", err)
	}

	entries := fake.setEntries("blocklist-1")
	if entries[0]["addedAt"] != "2024-01-01T00:00:00Z" {
		t.Errorf("existing entry lost extra field on patch: %v", entries[0])
	}
}

func TestAddMemberIfAbsent_UnknownSet(t *testing.T) {
	svc, _ := newMembershipFixture(t, map[string][]map[string]any{})

	_, err := svc.AddMemberIfAbsent(context.Background(), "missing", "1.2.3.4")
	if err == nil {
		t.Fatal("expected error for unknown set")
	}
}
