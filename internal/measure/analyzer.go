package measure

import "github.com/anirbans/formsense/internal/pose"

// Report holds the per-frame body measurements. Limb lengths are in
// centimeters, rounded to 0.1 cm; a nil length means the side's joints
// were missing or not visible enough. JointsCM maps landmark names to
// camera-centered cm coordinates.
type Report struct {
	ScalePxPerCM float64            `json:"scale_px_per_cm"`
	LeftArmCM    *float64           `json:"left_arm_cm"`
	RightArmCM   *float64           `json:"right_arm_cm"`
	LeftLegCM    *float64           `json:"left_leg_cm"`
	RightLegCM   *float64           `json:"right_leg_cm"`
	JointsCM     map[string]PointCM `json:"joints_cm,omitempty"`
}

// BodyAnalyzer computes limb lengths and a cm-space joint map for one
// frame. It holds no state besides the configured user height, so it
// is safe to call repeatedly with different frames.
type BodyAnalyzer struct {
	userHeightCM float64
}

// NewBodyAnalyzer creates an analyzer for a user of the given height
// in centimeters.
func NewBodyAnalyzer(userHeightCM float64) *BodyAnalyzer {
	return &BodyAnalyzer{userHeightCM: userHeightCM}
}

// AnalyzeLandmarks derives the measurement report for one frame.
// Arm length is the sum of the shoulder-elbow and elbow-wrist
// distances; leg length is the sum of the hip-knee and knee-ankle
// distances, each side measured independently. When the frame lacks
// the reference landmarks needed to compute a scale, the report is
// returned with every measurement unavailable.
func (a *BodyAnalyzer) AnalyzeLandmarks(frame pose.Frame, dims Dims) Report {
	scale := NewScaleCalculator(a.userHeightCM)
	pxPerCM, ok := scale.CalculateScale(frame, dims.Height)
	if !ok {
		return Report{}
	}

	report := Report{ScalePxPerCM: pxPerCM}

	report.LeftArmCM = limbLength(scale, frame, dims, pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist)
	report.RightArmCM = limbLength(scale, frame, dims, pose.RightShoulder, pose.RightElbow, pose.RightWrist)
	report.LeftLegCM = limbLength(scale, frame, dims, pose.LeftHip, pose.LeftKnee, pose.LeftAnkle)
	report.RightLegCM = limbLength(scale, frame, dims, pose.RightHip, pose.RightKnee, pose.RightAnkle)

	joints, err := scale.ConvertLandmarksToCM(frame, dims)
	if err == nil {
		report.JointsCM = make(map[string]PointCM, len(joints))
		for id, p := range joints {
			report.JointsCM[id.Name()] = p
		}
	}

	return report
}

// limbLength sums the two segment distances of a limb in centimeters,
// rounded to 0.1 cm. Returns nil if any of the three joints is missing
// or has visibility below the reliability threshold.
func limbLength(scale *ScaleCalculator, frame pose.Frame, dims Dims, a, b, c pose.LandmarkID) *float64 {
	la, ok := visibleLandmark(frame, a)
	if !ok {
		return nil
	}
	lb, ok := visibleLandmark(frame, b)
	if !ok {
		return nil
	}
	lc, ok := visibleLandmark(frame, c)
	if !ok {
		return nil
	}

	upper, err := scale.ConvertToCM(DistancePx(la, lb, dims))
	if err != nil {
		return nil
	}
	lower, err := scale.ConvertToCM(DistancePx(lb, lc, dims))
	if err != nil {
		return nil
	}

	total := roundCM(upper + lower)
	return &total
}

// visibleLandmark fetches a landmark and checks it against the
// visibility threshold. Absent visibility counts as fully visible.
func visibleLandmark(frame pose.Frame, id pose.LandmarkID) (pose.Landmark, bool) {
	l, ok := frame.Landmark(id)
	if !ok || l.Vis() < pose.MinVisibility {
		return pose.Landmark{}, false
	}
	return l, true
}
