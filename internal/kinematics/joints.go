package kinematics

import (
	"github.com/golang/geo/r3"

	"github.com/anirbans/formsense/internal/pose"
)

// Joint names attached to frame records by the temporal feature stage.
const (
	JointLeftElbow     = "left_elbow"
	JointRightElbow    = "right_elbow"
	JointLeftShoulder  = "left_shoulder"
	JointRightShoulder = "right_shoulder"
	JointLeftHip       = "left_hip"
	JointRightHip      = "right_hip"
	JointLeftKnee      = "left_knee"
	JointRightKnee     = "right_knee"
	JointTorso         = "torso"
)

// JointNames lists every joint in a stable order.
var JointNames = []string{
	JointLeftElbow,
	JointRightElbow,
	JointLeftShoulder,
	JointRightShoulder,
	JointLeftHip,
	JointRightHip,
	JointLeftKnee,
	JointRightKnee,
	JointTorso,
}

// jointTriplets maps each limb joint to the landmark triplet whose
// vertex angle defines it. The torso is handled separately because it
// uses synthesized midpoints.
var jointTriplets = map[string][3]pose.LandmarkID{
	JointLeftElbow:     {pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
	JointRightElbow:    {pose.RightShoulder, pose.RightElbow, pose.RightWrist},
	JointLeftShoulder:  {pose.LeftElbow, pose.LeftShoulder, pose.LeftHip},
	JointRightShoulder: {pose.RightElbow, pose.RightShoulder, pose.RightHip},
	JointLeftHip:       {pose.LeftShoulder, pose.LeftHip, pose.LeftKnee},
	JointRightHip:      {pose.RightShoulder, pose.RightHip, pose.RightKnee},
	JointLeftKnee:      {pose.LeftHip, pose.LeftKnee, pose.LeftAnkle},
	JointRightKnee:     {pose.RightHip, pose.RightKnee, pose.RightAnkle},
}

// JointAngles computes the angle of every joint whose required
// landmark triplet is available in the frame. Joints with missing
// landmarks are absent from the result, never zero-filled here; the
// temporal stage decides how to treat gaps.
func JointAngles(frame pose.Frame) map[string]float64 {
	angles := make(map[string]float64, len(JointNames))

	for name, t := range jointTriplets {
		p1, ok1 := frame.Landmark(t[0])
		p2, ok2 := frame.Landmark(t[1])
		p3, ok3 := frame.Landmark(t[2])
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		angles[name] = Angle(p1.Vec(), p2.Vec(), p3.Vec())
	}

	if torso, ok := TorsoAngle(frame); ok {
		angles[JointTorso] = torso
	}

	return angles
}

// TorsoAngle measures the angle at the hip midpoint between the
// shoulder midpoint and a synthetic vertical reference one unit above
// the hips (image y-down, so "up" is -y). The camera's vertical axis
// is assumed to approximate gravity; no true gravity vector is
// available from the upstream detector.
func TorsoAngle(frame pose.Frame) (float64, bool) {
	shoulderMid, ok := frame.Midpoint(pose.LeftShoulder, pose.RightShoulder)
	if !ok {
		return 0, false
	}
	hipMid, ok := frame.Midpoint(pose.LeftHip, pose.RightHip)
	if !ok {
		return 0, false
	}

	up := hipMid.Add(r3.Vector{X: 0, Y: -1, Z: 0})
	return Angle(shoulderMid, hipMid, up), true
}
