// Package rules evaluates exercise-specific geometric predicates per
// frame and conditionally overrides an upstream exercise label. Rules
// win only on disagreement with the current label, never on agreement
// or absence: a trust-hierarchy override, not a merge.
package rules

// Exercise labels a rule can produce. The empty string means no rule
// matched.
const (
	LabelPushup        = "pushup"
	LabelSquat         = "squat"
	LabelDeadlift      = "deadlift"
	LabelOverheadPress = "overhead_press"
)

// Predicate is the configuration of one gated predicate: an enable
// toggle plus a numeric threshold. Threshold units are degrees for
// every thresholded predicate; predicates without a threshold ignore
// the field.
type Predicate struct {
	Enabled   bool    `yaml:"enabled"`
	Threshold float64 `yaml:"threshold"`
}

// PushupRule gates the pushup label: hands below floor AND torso
// within Threshold degrees of horizontal.
type PushupRule struct {
	HandsBelowFloor Predicate `yaml:"hands_below_floor"`
	TorsoHorizontal Predicate `yaml:"torso_horizontal"`
}

// SquatRule gates the squat label on hip flexion alone:
// 180 - avg(hip angles) >= Threshold.
type SquatRule struct {
	HipFlexion Predicate `yaml:"hip_flexion"`
}

// DeadliftRule gates the deadlift label: both knees at least
// LegsExtended.Threshold degrees AND torso angle at most
// 90 - TorsoForwardTilt.Threshold degrees.
type DeadliftRule struct {
	LegsExtended     Predicate `yaml:"legs_extended"`
	TorsoForwardTilt Predicate `yaml:"torso_forward_tilt"`
}

// OverheadPressRule gates the overhead_press label: both wrists above
// the nose AND both elbows at least ElbowExtension.Threshold degrees.
type OverheadPressRule struct {
	HandsAboveHead Predicate `yaml:"hands_above_head"`
	ElbowExtension Predicate `yaml:"elbow_extension"`
}

// Config holds the rule gate settings: the global override switch and
// the per-exercise predicate toggles and thresholds.
type Config struct {
	// RulePriority enables the override: when true and a rule fires
	// with a label different from the frame's current one, the rule
	// label becomes the final label.
	RulePriority bool `yaml:"rule_priority"`

	Pushup        PushupRule        `yaml:"pushup"`
	Squat         SquatRule         `yaml:"squat"`
	Deadlift      DeadliftRule      `yaml:"deadlift"`
	OverheadPress OverheadPressRule `yaml:"overhead_press"`
}

// DefaultConfig returns a Config with every rule enabled and default
// thresholds. The torso_horizontal default of 90 degrees is
// deliberately permissive: the predicate only bites when configured
// tighter.
func DefaultConfig() Config {
	return Config{
		RulePriority: true,
		Pushup: PushupRule{
			HandsBelowFloor: Predicate{Enabled: true},
			TorsoHorizontal: Predicate{Enabled: true, Threshold: 90},
		},
		Squat: SquatRule{
			HipFlexion: Predicate{Enabled: true, Threshold: 50},
		},
		Deadlift: DeadliftRule{
			LegsExtended:     Predicate{Enabled: true, Threshold: 160},
			TorsoForwardTilt: Predicate{Enabled: true, Threshold: 45},
		},
		OverheadPress: OverheadPressRule{
			HandsAboveHead: Predicate{Enabled: true},
			ElbowExtension: Predicate{Enabled: true, Threshold: 150},
		},
	}
}
