package measure

import (
	"math"
	"testing"

	"github.com/anirbans/formsense/internal/pose"
)

// measureFrame is a synthetic subject whose nose-to-ankle extent spans
// 850 px at 1000x1000, giving exactly 5 px/cm for a 170 cm user.
func measureFrame() pose.Frame {
	f := pose.NewFrame()
	f.Landmarks[pose.Nose] = pose.Landmark{X: 0.5, Y: 0.05}
	f.Landmarks[pose.LeftShoulder] = pose.Landmark{X: 0.45, Y: 0.30}
	f.Landmarks[pose.RightShoulder] = pose.Landmark{X: 0.55, Y: 0.30}
	f.Landmarks[pose.LeftElbow] = pose.Landmark{X: 0.45, Y: 0.45}
	f.Landmarks[pose.RightElbow] = pose.Landmark{X: 0.55, Y: 0.45}
	f.Landmarks[pose.LeftWrist] = pose.Landmark{X: 0.45, Y: 0.60}
	f.Landmarks[pose.RightWrist] = pose.Landmark{X: 0.55, Y: 0.60}
	f.Landmarks[pose.LeftHip] = pose.Landmark{X: 0.46, Y: 0.55}
	f.Landmarks[pose.RightHip] = pose.Landmark{X: 0.54, Y: 0.55}
	f.Landmarks[pose.LeftKnee] = pose.Landmark{X: 0.46, Y: 0.75}
	f.Landmarks[pose.RightKnee] = pose.Landmark{X: 0.54, Y: 0.75}
	f.Landmarks[pose.LeftAnkle] = pose.Landmark{X: 0.46, Y: 0.90}
	f.Landmarks[pose.RightAnkle] = pose.Landmark{X: 0.54, Y: 0.90}
	return f
}

var measureDims = Dims{Width: 1000, Height: 1000}

func TestAnalyzeLandmarks(t *testing.T) {
	a := NewBodyAnalyzer(170)
	report := a.AnalyzeLandmarks(measureFrame(), measureDims)

	if math.Abs(report.ScalePxPerCM-5.0) > 1e-9 {
		t.Fatalf("scale = %f, want 5.0", report.ScalePxPerCM)
	}

	// Arm: 150 px shoulder-elbow + 150 px elbow-wrist = 60 cm.
	for side, got := range map[string]*float64{
		"left arm":  report.LeftArmCM,
		"right arm": report.RightArmCM,
	} {
		if got == nil {
			t.Fatalf("%s unavailable", side)
		}
		if math.Abs(*got-60.0) > 0.1 {
			t.Errorf("%s = %f, want 60.0", side, *got)
		}
	}

	// Leg: 200 px hip-knee + 150 px knee-ankle = 70 cm.
	for side, got := range map[string]*float64{
		"left leg":  report.LeftLegCM,
		"right leg": report.RightLegCM,
	} {
		if got == nil {
			t.Fatalf("%s unavailable", side)
		}
		if math.Abs(*got-70.0) > 0.1 {
			t.Errorf("%s = %f, want 70.0", side, *got)
		}
	}

	if len(report.JointsCM) != len(measureFrame().Landmarks) {
		t.Errorf("expected %d cm joints, got %d", len(measureFrame().Landmarks), len(report.JointsCM))
	}
}

func TestAnalyzeLandmarks_MissingJoint(t *testing.T) {
	f := measureFrame()
	delete(f.Landmarks, pose.LeftWrist)

	a := NewBodyAnalyzer(170)
	report := a.AnalyzeLandmarks(f, measureDims)

	if report.LeftArmCM != nil {
		t.Errorf("expected left arm unavailable, got %f", *report.LeftArmCM)
	}
	if report.RightArmCM == nil {
		t.Error("expected right arm to still be measured")
	}
}

func TestAnalyzeLandmarks_LowVisibilityJoint(t *testing.T) {
	f := measureFrame()
	v := 0.2
	elbow := f.Landmarks[pose.RightElbow]
	elbow.Visibility = &v
	f.Landmarks[pose.RightElbow] = elbow

	a := NewBodyAnalyzer(170)
	report := a.AnalyzeLandmarks(f, measureDims)

	if report.RightArmCM != nil {
		t.Errorf("expected right arm unavailable below visibility threshold, got %f", *report.RightArmCM)
	}
	if report.LeftArmCM == nil {
		t.Error("expected left arm to still be measured")
	}
}

func TestAnalyzeLandmarks_NoScaleReference(t *testing.T) {
	f := measureFrame()
	delete(f.Landmarks, pose.Nose)

	a := NewBodyAnalyzer(170)
	report := a.AnalyzeLandmarks(f, measureDims)

	if report.ScalePxPerCM != 0 {
		t.Errorf("expected zero scale, got %f", report.ScalePxPerCM)
	}
	if report.LeftArmCM != nil || report.RightLegCM != nil {
		t.Error("expected every measurement unavailable without a scale")
	}
	if report.JointsCM != nil {
		t.Error("expected no cm joints without a scale")
	}
}

func TestAnalyzeLandmarks_Repeatable(t *testing.T) {
	a := NewBodyAnalyzer(170)

	first := a.AnalyzeLandmarks(measureFrame(), measureDims)
	second := a.AnalyzeLandmarks(measureFrame(), measureDims)

	if *first.LeftArmCM != *second.LeftArmCM {
		t.Errorf("repeated analysis diverged: %f vs %f", *first.LeftArmCM, *second.LeftArmCM)
	}
}
