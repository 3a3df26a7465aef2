package rules

import (
	"github.com/anirbans/formsense/internal/kinematics"
	"github.com/anirbans/formsense/internal/pose"
)

// Stage is the rule gate. It is stateless per frame: each evaluation
// depends only on the frame's landmarks and the configured thresholds.
type Stage struct {
	cfg Config
}

// NewStage creates a rule gate with the given configuration.
func NewStage(cfg Config) *Stage {
	return &Stage{cfg: cfg}
}

// Evaluate runs the per-exercise rules against the frame in fixed
// order (pushup, squat, deadlift, overhead_press) and returns the
// label of the first rule whose enabled predicates all hold, or the
// empty string if none match. A rule with every predicate disabled
// never matches.
func (s *Stage) Evaluate(frame pose.Frame) string {
	angles := kinematics.JointAngles(frame)

	if s.matchPushup(frame) {
		return LabelPushup
	}
	if s.matchSquat(angles) {
		return LabelSquat
	}
	if s.matchDeadlift(angles) {
		return LabelDeadlift
	}
	if s.matchOverheadPress(frame, angles) {
		return LabelOverheadPress
	}
	return ""
}

// Apply evaluates the rules for the frame and returns a copy with
// rule_based_label and final_label filled in. The final label becomes
// the rule label only when the override is enabled, a rule fired, and
// it disagrees with the frame's current label; otherwise the current
// label is carried through unchanged.
func (s *Stage) Apply(frame pose.Frame) pose.Frame {
	out := frame.Clone()
	ruleLabel := s.Evaluate(frame)
	current := frame.CurrentLabel()

	out.RuleBasedLabel = ruleLabel
	if s.cfg.RulePriority && ruleLabel != "" && ruleLabel != current {
		out.FinalLabel = ruleLabel
	} else {
		out.FinalLabel = current
	}
	return out
}

func (s *Stage) matchPushup(frame pose.Frame) bool {
	r := s.cfg.Pushup
	if !r.HandsBelowFloor.Enabled && !r.TorsoHorizontal.Enabled {
		return false
	}
	if r.HandsBelowFloor.Enabled && !handsBelowFloor(frame) {
		return false
	}
	if r.TorsoHorizontal.Enabled && !torsoHorizontal(frame, r.TorsoHorizontal.Threshold) {
		return false
	}
	return true
}

func (s *Stage) matchSquat(angles map[string]float64) bool {
	r := s.cfg.Squat
	return r.HipFlexion.Enabled && hipFlexionAbove(angles, r.HipFlexion.Threshold)
}

func (s *Stage) matchDeadlift(angles map[string]float64) bool {
	r := s.cfg.Deadlift
	if !r.LegsExtended.Enabled && !r.TorsoForwardTilt.Enabled {
		return false
	}
	if r.LegsExtended.Enabled && !legsExtended(angles, r.LegsExtended.Threshold) {
		return false
	}
	if r.TorsoForwardTilt.Enabled && !torsoForwardTilt(angles, r.TorsoForwardTilt.Threshold) {
		return false
	}
	return true
}

func (s *Stage) matchOverheadPress(frame pose.Frame, angles map[string]float64) bool {
	r := s.cfg.OverheadPress
	if !r.HandsAboveHead.Enabled && !r.ElbowExtension.Enabled {
		return false
	}
	if r.HandsAboveHead.Enabled && !handsAboveHead(frame) {
		return false
	}
	if r.ElbowExtension.Enabled && !elbowExtension(angles, r.ElbowExtension.Threshold) {
		return false
	}
	return true
}
