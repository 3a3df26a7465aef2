package kinematics

import (
	"math"
	"testing"

	"github.com/anirbans/formsense/internal/pose"
)

// uprightFrame is a subject standing straight with extended limbs:
// every limb angle is 180 degrees and the torso is vertical.
func uprightFrame() pose.Frame {
	f := pose.NewFrame()
	f.Landmarks[pose.LeftShoulder] = pose.Landmark{X: 0.45, Y: 0.30}
	f.Landmarks[pose.RightShoulder] = pose.Landmark{X: 0.55, Y: 0.30}
	f.Landmarks[pose.LeftElbow] = pose.Landmark{X: 0.44, Y: 0.45}
	f.Landmarks[pose.RightElbow] = pose.Landmark{X: 0.56, Y: 0.45}
	f.Landmarks[pose.LeftWrist] = pose.Landmark{X: 0.43, Y: 0.60}
	f.Landmarks[pose.RightWrist] = pose.Landmark{X: 0.57, Y: 0.60}
	f.Landmarks[pose.LeftHip] = pose.Landmark{X: 0.46, Y: 0.55}
	f.Landmarks[pose.RightHip] = pose.Landmark{X: 0.54, Y: 0.55}
	f.Landmarks[pose.LeftKnee] = pose.Landmark{X: 0.46, Y: 0.75}
	f.Landmarks[pose.RightKnee] = pose.Landmark{X: 0.54, Y: 0.75}
	f.Landmarks[pose.LeftAnkle] = pose.Landmark{X: 0.46, Y: 0.92}
	f.Landmarks[pose.RightAnkle] = pose.Landmark{X: 0.54, Y: 0.92}
	return f
}

func TestJointAngles_FullBody(t *testing.T) {
	angles := JointAngles(uprightFrame())

	if len(angles) != len(JointNames) {
		t.Fatalf("expected %d joints, got %d", len(JointNames), len(angles))
	}

	// Elbows and knees are collinear in the fixture.
	for _, joint := range []string{JointLeftElbow, JointRightElbow, JointLeftKnee, JointRightKnee} {
		if math.Abs(angles[joint]-180.0) > 1e-6 {
			t.Errorf("%s = %f, want 180", joint, angles[joint])
		}
	}

	// An upright torso is aligned with the synthetic vertical reference.
	if math.Abs(angles[JointTorso]-0.0) > 1e-6 {
		t.Errorf("torso = %f, want 0", angles[JointTorso])
	}
}

func TestJointAngles_MissingLandmarkSkipsJoint(t *testing.T) {
	f := uprightFrame()
	delete(f.Landmarks, pose.LeftWrist)

	angles := JointAngles(f)

	if _, ok := angles[JointLeftElbow]; ok {
		t.Error("expected left_elbow to be unavailable without the wrist")
	}
	if _, ok := angles[JointRightElbow]; !ok {
		t.Error("expected right_elbow to still be computed")
	}
}

func TestJointAngles_EmptyFrame(t *testing.T) {
	angles := JointAngles(pose.NewFrame())
	if len(angles) != 0 {
		t.Errorf("expected no joints for an empty frame, got %d", len(angles))
	}
}

func TestTorsoAngle_RequiresShouldersAndHips(t *testing.T) {
	f := uprightFrame()
	delete(f.Landmarks, pose.LeftShoulder)

	if _, ok := TorsoAngle(f); ok {
		t.Error("expected torso angle to be unavailable without a shoulder")
	}
}

func TestTorsoAngle_HorizontalTorso(t *testing.T) {
	f := pose.NewFrame()
	// Shoulders directly to the side of the hips: a fully horizontal
	// torso is 90 degrees from the vertical reference.
	f.Landmarks[pose.LeftShoulder] = pose.Landmark{X: 0.20, Y: 0.50}
	f.Landmarks[pose.RightShoulder] = pose.Landmark{X: 0.20, Y: 0.54}
	f.Landmarks[pose.LeftHip] = pose.Landmark{X: 0.60, Y: 0.50}
	f.Landmarks[pose.RightHip] = pose.Landmark{X: 0.60, Y: 0.54}

	got, ok := TorsoAngle(f)
	if !ok {
		t.Fatal("torso angle unavailable")
	}
	if math.Abs(got-90.0) > 1e-6 {
		t.Errorf("horizontal torso = %f, want 90", got)
	}
}
