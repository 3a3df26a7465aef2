package pose

import (
	"fmt"
	"sort"
	"time"
)

// Metadata is the reserved side channel of a sequence. It carries
// per-stage bookkeeping (elapsed time, applied flags) and any keys
// written by external collaborators, which stages thread through
// unchanged.
type Metadata map[string]any

// Clone returns a shallow copy of the metadata map.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MarkStage records the elapsed time and applied flag for a pipeline
// step under the reserved stepN_time / stepN_applied keys.
func (m Metadata) MarkStage(step int, elapsed time.Duration, applied bool) {
	m[fmt.Sprintf("step%d_time", step)] = elapsed.Seconds()
	m[fmt.Sprintf("step%d_applied", step)] = applied
}

// Sequence is an ordered collection of frames indexed by non-negative
// frame id. Ids need not be contiguous; consumers must iterate them in
// ascending numeric order via IDs.
type Sequence struct {
	Frames map[int]Frame
	Meta   Metadata
}

// NewSequence returns an empty sequence with allocated maps.
func NewSequence() Sequence {
	return Sequence{
		Frames: make(map[int]Frame),
		Meta:   make(Metadata),
	}
}

// IDs returns the frame ids in ascending numeric order.
func (s Sequence) IDs() []int {
	ids := make([]int, 0, len(s.Frames))
	for id := range s.Frames {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Empty reports whether the sequence holds no frames.
func (s Sequence) Empty() bool {
	return len(s.Frames) == 0
}

// Clone returns a deep copy of the sequence. The metadata map is
// allocated even when the source had none, so stages can always record
// their bookkeeping on the copy.
func (s Sequence) Clone() Sequence {
	out := Sequence{
		Frames: make(map[int]Frame, len(s.Frames)),
		Meta:   s.Meta.Clone(),
	}
	if out.Meta == nil {
		out.Meta = make(Metadata)
	}
	for id, f := range s.Frames {
		out.Frames[id] = f.Clone()
	}
	return out
}
