// Package normalize re-centers and re-orients frames into a canonical
// pelvis-origin, shoulder-width-1, shoulder-line-horizontal coordinate
// frame, removing subject size and camera-plane rotation so angle and
// derivative features compare across people and camera setups.
package normalize

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/anirbans/formsense/internal/pose"
)

// MinShoulderWidth is the smallest shoulder width used as a divisor,
// guarding against division by zero on degenerate detections.
const MinShoulderWidth = 0.001

// Frame normalizes one frame independently of any other:
//
//  1. Translate so the pelvis midpoint is at the origin.
//  2. Rotate the XY plane so the shoulder line is horizontal.
//  3. Scale all three axes so the shoulder width is 1.
//
// Missing hips leave the origin unchanged, missing shoulders leave
// rotation and scale at their identity defaults. Visibility passes
// through untouched. The input frame is never mutated.
func Frame(f pose.Frame) pose.Frame {
	pelvis := pelvisCenter(f)
	width := shoulderWidth(f)
	angle := shoulderAngle(f)

	sin, cos := math.Sincos(-angle)

	out := f.Clone()
	for id, l := range out.Landmarks {
		v := l.Vec().Sub(pelvis)

		// Standard 2D rotation of the XY components by -angle.
		x := v.X*cos - v.Y*sin
		y := v.X*sin + v.Y*cos

		l.X = x / width
		l.Y = y / width
		l.Z = v.Z / width
		out.Landmarks[id] = l
	}
	return out
}

// pelvisCenter returns the midpoint of the hips, or the origin if
// either hip is missing.
func pelvisCenter(f pose.Frame) r3.Vector {
	mid, ok := f.Midpoint(pose.LeftHip, pose.RightHip)
	if !ok {
		return r3.Vector{}
	}
	return mid
}

// shoulderWidth returns the 3D distance between the shoulders clamped
// to MinShoulderWidth, or 1.0 if either shoulder is missing.
func shoulderWidth(f pose.Frame) float64 {
	left, ok := f.Landmark(pose.LeftShoulder)
	if !ok {
		return 1.0
	}
	right, ok := f.Landmark(pose.RightShoulder)
	if !ok {
		return 1.0
	}

	width := right.Vec().Sub(left.Vec()).Norm()
	if width < MinShoulderWidth {
		return MinShoulderWidth
	}
	return width
}

// shoulderAngle returns the XY-plane angle of the left-to-right
// shoulder vector in radians, or 0.0 if either shoulder is missing.
func shoulderAngle(f pose.Frame) float64 {
	left, ok := f.Landmark(pose.LeftShoulder)
	if !ok {
		return 0.0
	}
	right, ok := f.Landmark(pose.RightShoulder)
	if !ok {
		return 0.0
	}

	return math.Atan2(right.Y-left.Y, right.X-left.X)
}
