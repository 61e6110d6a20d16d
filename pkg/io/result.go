package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/infection/pkg/errors"
	"github.com/matzehuels/infection/pkg/infection"
	"github.com/matzehuels/infection/pkg/member"
)

// Result is an infected set together with the parameters that produced it.
type Result struct {
	Seed     member.ID      `json:"seed"`
	Mode     infection.Mode `json:"mode"`
	Min      *int           `json:"min,omitempty"`
	Max      *int           `json:"max,omitempty"`
	Infected []member.ID    `json:"infected"`
}

// TotalResult describes a total infection from seed.
func TotalResult(seed member.ID, infected member.Set) Result {
	return Result{Seed: seed, Mode: infection.ModeTotal, Infected: sortedIDs(infected)}
}

// LimitedResult describes a limited infection from seed bounded by [lo, hi].
func LimitedResult(seed member.ID, lo, hi int, infected member.Set) Result {
	return Result{Seed: seed, Mode: infection.ModeLimited, Min: &lo, Max: &hi, Infected: sortedIDs(infected)}
}

// Set returns the infected members as a set.
func (r Result) Set() member.Set { return member.NewSet(r.Infected...) }

// WriteResult encodes r as indented JSON.
func WriteResult(r Result, w io.Writer) error {
	return encode(w, r)
}

// ExportResult writes r to a JSON file at path.
func ExportResult(r Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(r, f)
}

// ReadResult decodes a result and checks that its mode is known.
func ReadResult(r io.Reader) (Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode result")
	}
	if _, err := infection.ParseMode(string(res.Mode)); err != nil {
		return Result{}, err
	}
	return res, nil
}
