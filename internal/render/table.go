// Package render formats API results as display tables for the console.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	webscale "github.com/webscale/client-go"
)

// Table is an ordered set of rows under fixed column headers.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Write renders the table in aligned columns.
func (t *Table) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, h := range t.Headers {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)
	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// Sets renders a list of address sets, one row per set. Columns are the id
// plus the union of every extra field the server returned, sorted by name.
func Sets(sets []webscale.AddressSet) *Table {
	extras := map[string]struct{}{}
	for _, s := range sets {
		for k := range s.Extra {
			extras[k] = struct{}{}
		}
	}
	keys := sortedKeys(extras)

	t := &Table{Headers: append([]string{"ID"}, upper(keys)...)}
	for _, s := range sets {
		row := []string{s.ID}
		for _, k := range keys {
			row = append(row, rawString(s.Extra[k]))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// SetConfig renders a single address set as ordered field/value rows: the
// id first, then the server's extra fields sorted by name.
func SetConfig(set *webscale.AddressSet) *Table {
	t := &Table{Headers: []string{"FIELD", "VALUE"}}
	t.Rows = append(t.Rows, []string{"id", set.ID})
	for _, k := range sortedKeys(keySet(set.Extra)) {
		t.Rows = append(t.Rows, []string{k, rawString(set.Extra[k])})
	}
	return t
}

// Entries renders address entries, one row per member address.
func Entries(entries []webscale.AddressEntry) *Table {
	extras := map[string]struct{}{}
	for _, e := range entries {
		for k := range e.Extra {
			extras[k] = struct{}{}
		}
	}
	keys := sortedKeys(extras)

	t := &Table{Headers: append([]string{"ADDRESS", "DESCRIPTION"}, upper(keys)...)}
	for _, e := range entries {
		row := []string{e.Address, e.Description}
		for _, k := range keys {
			row = append(row, rawString(e.Extra[k]))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func keySet(m map[string]json.RawMessage) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func upper(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = strings.ToUpper(k)
	}
	return out
}

// rawString renders a raw JSON value for display: strings are unquoted,
// everything else is shown as its JSON text.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
