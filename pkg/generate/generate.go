package generate

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/matzehuels/infection/pkg/errors"
	"github.com/matzehuels/infection/pkg/member"
)

// DefaultSeed is the seed used when no option sets one.
const DefaultSeed = uint64(42)

// Option customizes Generate.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithSeed seeds a PCG source so that runs are reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	}
}

// WithRand supplies the random source directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// Range is a half-open interval [Start, End) of member IDs.
type Range struct {
	Start, End member.ID
}

// Len returns the number of IDs in the range.
func (r Range) Len() int { return int(r.End - r.Start) }

// LayerRanges splits IDs 0..size-1 into contiguous layers, each holding
// floor(pct*size) members. IDs past the last layer belong to no layer.
func LayerRanges(t Template, size int) []Range {
	ranges := make([]Range, len(t.Layers))
	lo := 0
	for i, l := range t.Layers {
		hi := lo + int(math.Floor(l.Pct*float64(size)+pctTolerance))
		hi = min(hi, size)
		ranges[i] = Range{Start: member.ID(lo), End: member.ID(hi)}
		lo = hi
	}
	return ranges
}

// NumParents maps a uniform draw r in [0, 1) to a parent count: Min plus
// the index of the first CDF bucket that reaches r.
func NumParents(d Distribution, r float64) int {
	n := d.Min
	for _, v := range d.CDF {
		if v >= r {
			return n
		}
		n++
	}
	return n
}

// Generate builds a random hierarchical coaching graph with size members.
//
// Each member of a layer with a distribution draws its parent count from
// that distribution and picks that many distinct parents uniformly from the
// next layer. The count is capped at the next layer's size. Members outside
// every layer, and members of layers without a distribution, start with no
// parents. Upper layers can end up unconnected; the generator does not
// force the graph to be connected.
//
// The returned graph is frozen.
func Generate(t Template, size int, opts ...Option) (*member.Graph, error) {
	if err := errors.ValidateSize(size); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	cfg := config{}
	WithSeed(DefaultSeed)(&cfg)
	for _, opt := range opts {
		opt(&cfg)
	}

	g := member.New()
	for i := 0; i < size; i++ {
		if _, err := g.AddMember(member.ID(i)); err != nil {
			return nil, err
		}
	}

	ranges := LayerRanges(t, size)
	for i, layer := range t.Layers {
		if !layer.HasDist() {
			continue
		}
		above := ranges[i+1]
		for id := ranges[i].Start; id < ranges[i].End; id++ {
			n := min(NumParents(*layer.Dist, cfg.rng.Float64()), above.Len())
			for _, p := range sample(cfg.rng, above, n) {
				if err := g.AddCoaching(p, id); err != nil {
					return nil, fmt.Errorf("layer %d member %d: %w", i+1, id, err)
				}
			}
		}
	}

	g.Freeze()
	return g, nil
}

// sample draws n distinct IDs uniformly from r. n must not exceed r.Len().
func sample(rng *rand.Rand, r Range, n int) []member.ID {
	if n <= 0 {
		return nil
	}
	picked := make([]member.ID, 0, n)
	seen := make(member.Set, n)
	for len(picked) < n {
		id := r.Start + member.ID(rng.IntN(r.Len()))
		if seen.Has(id) {
			continue
		}
		seen.Add(id)
		picked = append(picked, id)
	}
	return picked
}
