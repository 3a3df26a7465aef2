package kinematics

import (
	"github.com/anirbans/formsense/internal/pose"
)

// Config holds the finite-difference window sizes for the temporal
// feature stage.
type Config struct {
	// DeltaWindow is the window for the first derivative of each
	// joint-angle series, in samples.
	DeltaWindow int `yaml:"delta_window"`
	// Delta2Window is the window for the second derivative, applied to
	// the first-derivative series.
	Delta2Window int `yaml:"delta2_window"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		DeltaWindow:  5,
		Delta2Window: 5,
	}
}

// Stage computes per-frame joint angles and their first and second
// derivatives across an ordered sequence, merging the results into
// each frame's record. It is a pure function of its input sequence
// plus the configured windows; no state survives between calls.
type Stage struct {
	cfg Config
}

// NewStage creates a temporal feature stage with the given windows.
func NewStage(cfg Config) *Stage {
	return &Stage{cfg: cfg}
}

// Apply computes joint angles for every frame in ascending id order,
// accumulates a per-joint scalar series across the whole sequence, and
// attaches the angles plus their derivative values to each frame of a
// new sequence. Frames where a joint's angle could not be computed
// contribute 0.0 to that joint's series; this can inject derivative
// spikes at the boundary of a visibility gap. Downstream consumers
// depend on that behavior, so do not replace it with interpolation or
// gap skipping without coordinating with them.
//
// Derivative computation is an inherently sequential scan: it needs
// the complete buffered series before any value can be emitted.
func (s *Stage) Apply(seq pose.Sequence) pose.Sequence {
	out := seq.Clone()
	ids := out.IDs()

	// Per-frame vertex angles.
	angles := make([]map[string]float64, len(ids))
	for i, id := range ids {
		angles[i] = JointAngles(out.Frames[id])
	}

	// Per-joint series across the sequence, zero-substituted where the
	// joint was unavailable.
	series := make(map[string][]float64, len(JointNames))
	for _, joint := range JointNames {
		vals := make([]float64, len(ids))
		for i := range ids {
			if v, ok := angles[i][joint]; ok {
				vals[i] = v
			}
		}
		series[joint] = vals
	}

	delta := make(map[string][]float64, len(JointNames))
	delta2 := make(map[string][]float64, len(JointNames))
	for _, joint := range JointNames {
		d1 := Derivatives(series[joint], s.cfg.DeltaWindow)
		delta[joint] = d1
		delta2[joint] = Derivatives(d1, s.cfg.Delta2Window)
	}

	for i, id := range ids {
		f := out.Frames[id]
		f.JointAngles = angles[i]
		f.DeltaAngles = make(map[string]float64, len(JointNames))
		f.Delta2Angles = make(map[string]float64, len(JointNames))
		for _, joint := range JointNames {
			f.DeltaAngles[joint] = delta[joint][i]
			f.Delta2Angles[joint] = delta2[joint][i]
		}
		out.Frames[id] = f
	}

	return out
}
