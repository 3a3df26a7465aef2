package rules

import (
	"math"

	"github.com/anirbans/formsense/internal/kinematics"
	"github.com/anirbans/formsense/internal/pose"
)

// Predicates operate on image-convention coordinates: y grows
// downward, so "below" means a larger y value. Any missing landmark or
// uncomputable angle makes the predicate false; partial pose detection
// is the expected steady state, not an error.

// handsBelowFloor reports whether both wrists sit below the mean ankle
// height.
func handsBelowFloor(frame pose.Frame) bool {
	leftWrist, ok := frame.Landmark(pose.LeftWrist)
	if !ok {
		return false
	}
	rightWrist, ok := frame.Landmark(pose.RightWrist)
	if !ok {
		return false
	}
	leftAnkle, ok := frame.Landmark(pose.LeftAnkle)
	if !ok {
		return false
	}
	rightAnkle, ok := frame.Landmark(pose.RightAnkle)
	if !ok {
		return false
	}

	floorY := (leftAnkle.Y + rightAnkle.Y) / 2
	return leftWrist.Y > floorY && rightWrist.Y > floorY
}

// torsoHorizontal reports whether the shoulder-to-hip line is within
// maxDeg degrees of the X axis. The angle is folded into [0,90] so the
// check is independent of which way the torso points.
func torsoHorizontal(frame pose.Frame, maxDeg float64) bool {
	shoulderMid, ok := frame.Midpoint(pose.LeftShoulder, pose.RightShoulder)
	if !ok {
		return false
	}
	hipMid, ok := frame.Midpoint(pose.LeftHip, pose.RightHip)
	if !ok {
		return false
	}

	v := hipMid.Sub(shoulderMid)
	deg := math.Abs(math.Atan2(v.Y, v.X) * 180 / math.Pi)
	if deg > 90 {
		deg = 180 - deg
	}
	return deg <= maxDeg
}

// hipFlexionAbove reports whether the average hip flexion,
// 180 - avg(hip angles), is at least minDeg.
func hipFlexionAbove(angles map[string]float64, minDeg float64) bool {
	left, ok := angles[kinematics.JointLeftHip]
	if !ok {
		return false
	}
	right, ok := angles[kinematics.JointRightHip]
	if !ok {
		return false
	}

	flexion := 180 - (left+right)/2
	return flexion >= minDeg
}

// legsExtended reports whether both knee angles are at least minDeg.
func legsExtended(angles map[string]float64, minDeg float64) bool {
	left, ok := angles[kinematics.JointLeftKnee]
	if !ok {
		return false
	}
	right, ok := angles[kinematics.JointRightKnee]
	if !ok {
		return false
	}
	return left >= minDeg && right >= minDeg
}

// torsoForwardTilt reports whether the torso leans forward by at least
// tiltDeg degrees from vertical, i.e. the torso angle is at most
// 90 - tiltDeg.
func torsoForwardTilt(angles map[string]float64, tiltDeg float64) bool {
	torso, ok := angles[kinematics.JointTorso]
	if !ok {
		return false
	}
	return torso <= 90-tiltDeg
}

// handsAboveHead reports whether both wrists sit above the nose.
func handsAboveHead(frame pose.Frame) bool {
	nose, ok := frame.Landmark(pose.Nose)
	if !ok {
		return false
	}
	leftWrist, ok := frame.Landmark(pose.LeftWrist)
	if !ok {
		return false
	}
	rightWrist, ok := frame.Landmark(pose.RightWrist)
	if !ok {
		return false
	}
	return leftWrist.Y < nose.Y && rightWrist.Y < nose.Y
}

// elbowExtension reports whether both elbow angles are at least minDeg.
func elbowExtension(angles map[string]float64, minDeg float64) bool {
	left, ok := angles[kinematics.JointLeftElbow]
	if !ok {
		return false
	}
	right, ok := angles[kinematics.JointRightElbow]
	if !ok {
		return false
	}
	return left >= minDeg && right >= minDeg
}
