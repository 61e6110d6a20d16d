package infection_test

import (
	"context"
	"testing"

	"github.com/matzehuels/infection/pkg/generate"
	"github.com/matzehuels/infection/pkg/infection"
	"github.com/matzehuels/infection/pkg/member"
)

func generated(t *testing.T, size int, seed uint64) *member.Graph {
	t.Helper()
	g, err := generate.Generate(generate.DefaultTemplate(), size, generate.WithSeed(seed))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return g
}

func reachable(g *member.Graph, set member.Set, seed member.ID) member.Set {
	seen := member.NewSet(seed)
	queue := []member.ID{seed}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		links, _ := g.Links(id)
		for l := range links {
			if set.Has(l) && !seen.Has(l) {
				seen.Add(l)
				queue = append(queue, l)
			}
		}
	}
	return seen
}

func TestTotalProperties(t *testing.T) {
	g := generated(t, 2000, 11)
	for _, seed := range []member.ID{0, 17, 850, 1999} {
		comp, err := infection.Total(g, seed)
		if err != nil {
			t.Fatalf("Total(%d): %v", seed, err)
		}
		if !comp.Has(seed) {
			t.Errorf("Total(%d) missing seed", seed)
		}
		if n := infection.BoundaryEdges(g, comp); n != 0 {
			t.Errorf("Total(%d) has %d boundary edges, want 0", seed, n)
		}
		if got := reachable(g, comp, seed); !got.Equal(comp) {
			t.Errorf("Total(%d) is not connected", seed)
		}
	}
}

func TestComponentsPartition(t *testing.T) {
	g := generated(t, 1500, 5)
	seen := member.Set{}
	for _, comp := range infection.Components(g) {
		for id := range comp {
			if seen.Has(id) {
				t.Fatalf("member %d in more than one component", id)
			}
			seen.Add(id)
		}
	}
	if seen.Len() != g.Len() {
		t.Errorf("components cover %d members, want %d", seen.Len(), g.Len())
	}
}

func TestLimitedProperties(t *testing.T) {
	g := generated(t, 3000, 42)
	ranges := []struct{ min, max int }{
		{1, 1}, {0, 10}, {5, 20}, {50, 80}, {300, 500},
	}
	for _, seed := range []member.ID{0, 123, 2500, 2999} {
		comp, _ := infection.Total(g, seed)
		for _, r := range ranges {
			got, err := infection.Limited(g, seed, r.min, r.max)
			if err != nil {
				t.Fatalf("Limited(%d, %d, %d): %v", seed, r.min, r.max, err)
			}
			if !got.Has(seed) {
				t.Errorf("Limited(%d, %d, %d) missing seed", seed, r.min, r.max)
			}
			if got.Len() > r.max {
				t.Errorf("Limited(%d, %d, %d) size %d above max", seed, r.min, r.max, got.Len())
			}
			if want := min(r.min, comp.Len()); got.Len() < want {
				t.Errorf("Limited(%d, %d, %d) size %d below %d", seed, r.min, r.max, got.Len(), want)
			}
			if !reachable(g, got, seed).Equal(got) {
				t.Errorf("Limited(%d, %d, %d) is not connected", seed, r.min, r.max)
			}
			for id := range got {
				if !comp.Has(id) {
					t.Errorf("Limited(%d, %d, %d) left the component at %d", seed, r.min, r.max, id)
				}
			}
		}
	}
}

func TestLimitedDeterministic(t *testing.T) {
	ctx := context.Background()
	a, err := infection.LimitedTrace(ctx, generated(t, 2000, 9), 4, 100, 200)
	if err != nil {
		t.Fatal(err)
	}
	b, err := infection.LimitedTrace(ctx, generated(t, 2000, 9), 4, 100, 200)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Infected.Equal(b.Infected) || len(a.Steps) != len(b.Steps) {
		t.Fatal("identical inputs gave different results")
	}
	for i := range a.Steps {
		if a.Steps[i] != b.Steps[i] {
			t.Fatalf("step %d differs: %+v vs %+v", i, a.Steps[i], b.Steps[i])
		}
	}
}

func TestLimitedWithinTotal(t *testing.T) {
	g := generated(t, 1000, 3)
	comp, _ := infection.Total(g, 0)
	got, err := infection.Limited(g, 0, comp.Len(), comp.Len()+10)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(comp) {
		t.Errorf("Limited with min = component size gave %d members, want %d", got.Len(), comp.Len())
	}
}
