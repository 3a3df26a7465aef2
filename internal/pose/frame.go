package pose

import "github.com/golang/geo/r3"

// Frame holds the landmarks detected at one time sample, plus the
// labels and derived features attached by the surrounding pipeline.
// Landmark ids absent from the map are undetected for that frame.
type Frame struct {
	Landmarks map[LandmarkID]Landmark

	// Label and SmoothedLabel are supplied by the upstream
	// classifier/smoother; this package consumes them, never produces them.
	Label         string
	SmoothedLabel string

	// JointAngles, DeltaAngles and Delta2Angles are attached by the
	// temporal feature stage, keyed by joint name.
	JointAngles  map[string]float64
	DeltaAngles  map[string]float64
	Delta2Angles map[string]float64

	// RuleBasedLabel and FinalLabel are attached by the rule gate.
	RuleBasedLabel string
	FinalLabel     string
}

// NewFrame returns an empty frame with an allocated landmark map.
func NewFrame() Frame {
	return Frame{Landmarks: make(map[LandmarkID]Landmark)}
}

// Landmark looks up a landmark by id. The second return value reports
// whether the landmark was detected in this frame.
func (f Frame) Landmark(id LandmarkID) (Landmark, bool) {
	l, ok := f.Landmarks[id]
	return l, ok
}

// Has reports whether every given landmark is present in the frame.
func (f Frame) Has(ids ...LandmarkID) bool {
	for _, id := range ids {
		if _, ok := f.Landmarks[id]; !ok {
			return false
		}
	}
	return true
}

// Midpoint returns the elementwise midpoint of two landmarks.
// The second return value is false if either landmark is missing.
func (f Frame) Midpoint(a, b LandmarkID) (r3.Vector, bool) {
	la, ok := f.Landmarks[a]
	if !ok {
		return r3.Vector{}, false
	}
	lb, ok := f.Landmarks[b]
	if !ok {
		return r3.Vector{}, false
	}
	return la.Vec().Add(lb.Vec()).Mul(0.5), true
}

// Clone returns a deep copy of the frame. Stages transform clones so
// the caller's input is never mutated.
func (f Frame) Clone() Frame {
	out := f
	out.Landmarks = cloneLandmarks(f.Landmarks)
	out.JointAngles = cloneFloats(f.JointAngles)
	out.DeltaAngles = cloneFloats(f.DeltaAngles)
	out.Delta2Angles = cloneFloats(f.Delta2Angles)
	return out
}

func cloneLandmarks(m map[LandmarkID]Landmark) map[LandmarkID]Landmark {
	if m == nil {
		return nil
	}
	out := make(map[LandmarkID]Landmark, len(m))
	for id, l := range m {
		if l.Visibility != nil {
			v := *l.Visibility
			l.Visibility = &v
		}
		out[id] = l
	}
	return out
}

func cloneFloats(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CurrentLabel returns the label the rule gate measures disagreement
// against: the smoothed label when present, else the plain label, else
// the empty string.
func (f Frame) CurrentLabel() string {
	if f.SmoothedLabel != "" {
		return f.SmoothedLabel
	}
	return f.Label
}
