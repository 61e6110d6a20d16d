package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/infection/pkg/member"
)

type graph struct {
	Members []memberJSON `json:"members"`
}

type memberJSON struct {
	ID       member.ID   `json:"id"`
	Parents  []member.ID `json:"parents"`
	Children []member.ID `json:"children"`
	Version  int         `json:"version"`
}

// WriteJSON encodes g as JSON and writes it to w. Members and their
// relationships are sorted by ID. The output can be re-imported with
// [ReadJSON].
func WriteJSON(g *member.Graph, w io.Writer) error {
	out := graph{Members: make([]memberJSON, 0, g.Len())}
	for _, m := range g.Members() {
		out.Members = append(out.Members, memberJSON{
			ID:       m.ID,
			Parents:  sortedIDs(m.Parents()),
			Children: sortedIDs(m.Children()),
			Version:  m.Version,
		})
	}
	return encode(w, out)
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *member.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// sortedIDs never returns nil so empty sets encode as [].
func sortedIDs(s member.Set) []member.ID {
	if len(s) == 0 {
		return []member.ID{}
	}
	return s.Sorted()
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
