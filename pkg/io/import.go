package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/infection/pkg/errors"
	"github.com/matzehuels/infection/pkg/member"
)

// ReadJSON decodes a JSON graph from r.
//
// ReadJSON returns an error if:
//   - The JSON is malformed (INVALID_INPUT)
//   - A member ID appears twice (DUPLICATE_MEMBER)
//   - A relationship references an unknown member (UNKNOWN_MEMBER)
//   - A member lists itself as parent or child (INVALID_GRAPH)
//
// The returned graph is frozen. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*member.Graph, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode graph")
	}

	adj := make(map[member.ID]member.Adjacency, len(data.Members))
	for _, m := range data.Members {
		if _, dup := adj[m.ID]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateMember, "member %d listed twice", m.ID)
		}
		adj[m.ID] = member.Adjacency{Parents: m.Parents, Children: m.Children, Version: m.Version}
	}

	g, err := member.FromAdjacency(adj)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "build graph")
	}
	g.Freeze()
	return g, nil
}

// ImportJSON reads a JSON graph file at path using [ReadJSON].
func ImportJSON(path string) (*member.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
