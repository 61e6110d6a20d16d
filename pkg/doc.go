// Package pkg provides the core libraries for simulating staged feature
// rollouts ("infections") over a coaching graph.
//
// # Overview
//
// Users are members of an undirected graph whose edges are coaching
// relationships. Rolling a new product version out to a member should also
// reach the members it coaches and is coached by, so that no classroom sees
// two versions at once. The pkg directory is organized into four areas:
//
//  1. Domain: [member] (graph model) and [infection] (total and limited
//     infection)
//  2. Graph sources: [generate] (random layered graphs) and [io] (JSON
//     import and export)
//  3. Output: [render] (DOT, SVG and PNG diagrams)
//  4. Orchestration: [pipeline], backed by [cache], [observability],
//     [errors] and [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	Template (TOML) or graph.json
//	         ↓
//	    [generate] / [io] (build a frozen member.Graph)
//	         ↓
//	    [infection] (total component or limited selection)
//	         ↓
//	    member.Graph.SetVersion (rollout)
//	         ↓
//	    [render] / [io] (diagram or result JSON)
//
// # Quick Start
//
//	g, _ := generate.Generate(generate.DefaultTemplate(), 10000, generate.WithSeed(1))
//
//	total, _ := infection.Total(g, 42)
//	limited, _ := infection.Limited(g, 42, 300, 500)
//
//	fmt.Println(total.Len(), limited.Len(), infection.BoundaryEdges(g, limited))
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -run Example ./... # Examples only
//
// [member]: https://pkg.go.dev/github.com/matzehuels/infection/pkg/member
// [infection]: https://pkg.go.dev/github.com/matzehuels/infection/pkg/infection
// [generate]: https://pkg.go.dev/github.com/matzehuels/infection/pkg/generate
// [io]: https://pkg.go.dev/github.com/matzehuels/infection/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/infection/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/infection/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/infection/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/infection/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/infection/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/infection/pkg/buildinfo
package pkg
