package infection

import (
	"github.com/matzehuels/infection/pkg/member"
)

// trimState is the state of the tail trimmer.
type trimState int

const (
	// trimReset means the optional picks so far improved the set overall and
	// nothing is pending removal.
	trimReset trimState = iota
	// trimAccumulating means the running badness sum is non-negative and the
	// picks since the last reset are pending removal.
	trimAccumulating
)

func (s trimState) String() string {
	if s == trimAccumulating {
		return "accumulating"
	}
	return "reset"
}

// tailTrimmer tracks the trailing run of optional picks whose combined
// badness is non-negative. The zero value starts in trimReset.
type tailTrimmer struct {
	state   trimState
	total   int
	pending []member.ID
}

// observe records an optional pick and returns the resulting state.
func (t *tailTrimmer) observe(id member.ID, badness int) trimState {
	t.total += badness
	if t.total >= 0 {
		t.state = trimAccumulating
		t.pending = append(t.pending, id)
		return t.state
	}
	t.state = trimReset
	t.total = 0
	t.pending = t.pending[:0]
	return t.state
}

// tail returns the picks currently pending removal.
func (t *tailTrimmer) tail() member.Set {
	return member.NewSet(t.pending...)
}
