// Package kinematics computes joint angles per frame and their
// finite-difference first and second derivatives across an ordered
// frame sequence.
package kinematics

import (
	"math"

	"github.com/golang/geo/r3"
)

// MinVectorMagnitude guards the vertex angle against degenerate
// geometry: vectors shorter than this yield a 0.0 angle.
const MinVectorMagnitude = 1e-4

// Angle returns the vertex angle at p2 in degrees, formed by the
// segments p2-p1 and p2-p3. The cosine argument is clamped to [-1,1]
// to tolerate floating-point drift; degenerate (near zero-length)
// segments return 0.0.
func Angle(p1, p2, p3 r3.Vector) float64 {
	v1 := p1.Sub(p2)
	v2 := p3.Sub(p2)

	n1 := v1.Norm()
	n2 := v2.Norm()
	if n1 < MinVectorMagnitude || n2 < MinVectorMagnitude {
		return 0.0
	}

	cos := v1.Dot(v2) / (n1 * n2)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos) * 180 / math.Pi
}
