// Package measure converts pixel-space landmark geometry into
// real-world centimeter measurements using a known user height.
package measure

import (
	"errors"
	"math"

	"github.com/anirbans/formsense/internal/pose"
)

// ErrScaleNotInitialized is returned when a centimeter conversion is
// requested before a scale has been computed. This is a hard
// precondition failure: cm values without a scale are meaningless, not
// merely partial.
var ErrScaleNotInitialized = errors.New("scale not initialized: call CalculateScale first")

// Dims holds the pixel dimensions of the source image, used to
// denormalize landmark coordinates.
type Dims struct {
	Width  float64
	Height float64
}

// ScaleCalculator derives a pixels-per-centimeter scale from a frame
// using the vertical extent between the nose and the ankles, anchored
// to the configured user height.
type ScaleCalculator struct {
	userHeightCM float64
	pxPerCM      float64
	initialized  bool
}

// NewScaleCalculator creates a calculator for a user of the given
// height in centimeters.
func NewScaleCalculator(userHeightCM float64) *ScaleCalculator {
	return &ScaleCalculator{userHeightCM: userHeightCM}
}

// CalculateScale computes the pixels-per-centimeter scale from the
// frame's nose and ankle landmarks. The vertical pixel extent is
// |nose.y - mean(ankle.y)| * frameHeightPx and the scale is that
// extent divided by the user height.
//
// The second return value is false when the nose or either ankle is
// missing, or the user height is not positive; the calculator is then
// left uninitialized. Missing landmarks are a data condition, not an
// error.
func (s *ScaleCalculator) CalculateScale(frame pose.Frame, frameHeightPx float64) (float64, bool) {
	nose, ok := frame.Landmark(pose.Nose)
	if !ok {
		return 0, false
	}
	leftAnkle, ok := frame.Landmark(pose.LeftAnkle)
	if !ok {
		return 0, false
	}
	rightAnkle, ok := frame.Landmark(pose.RightAnkle)
	if !ok {
		return 0, false
	}
	if s.userHeightCM <= 0 {
		return 0, false
	}

	meanAnkleY := (leftAnkle.Y + rightAnkle.Y) / 2
	extentPx := math.Abs(nose.Y-meanAnkleY) * frameHeightPx

	s.pxPerCM = extentPx / s.userHeightCM
	s.initialized = true
	return s.pxPerCM, true
}

// Initialized reports whether a scale has been computed.
func (s *ScaleCalculator) Initialized() bool {
	return s.initialized
}

// ConvertToCM converts a pixel distance to centimeters.
// Returns ErrScaleNotInitialized if no scale has been computed.
func (s *ScaleCalculator) ConvertToCM(pixels float64) (float64, error) {
	if !s.initialized || s.pxPerCM == 0 {
		return 0, ErrScaleNotInitialized
	}
	return pixels / s.pxPerCM, nil
}

// DistancePx returns the Euclidean distance between two landmarks in
// pixel space, denormalizing x and y by the frame dimensions. Depth is
// treated as already being on the x-axis pixel scale; upstream depth
// units are not metrically calibrated, so this is an approximation.
func DistancePx(p1, p2 pose.Landmark, dims Dims) float64 {
	dx := (p1.X - p2.X) * dims.Width
	dy := (p1.Y - p2.Y) * dims.Height
	dz := (p1.Z - p2.Z) * dims.Width
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PointCM is one landmark position in camera-centered, y-up,
// centimeter-scaled coordinates.
type PointCM struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ConvertLandmarksToCM maps every landmark of the frame into
// camera-centered, y-up, centimeter-scaled coordinates rounded to
// 0.1 cm. Returns ErrScaleNotInitialized if no scale has been
// computed.
func (s *ScaleCalculator) ConvertLandmarksToCM(frame pose.Frame, dims Dims) (map[pose.LandmarkID]PointCM, error) {
	if !s.initialized || s.pxPerCM == 0 {
		return nil, ErrScaleNotInitialized
	}

	out := make(map[pose.LandmarkID]PointCM, len(frame.Landmarks))
	for id, l := range frame.Landmarks {
		// Center on the image midpoint and flip y so up is positive.
		xPx := (l.X - 0.5) * dims.Width
		yPx := (0.5 - l.Y) * dims.Height
		zPx := l.Z * dims.Width

		out[id] = PointCM{
			X: roundCM(xPx / s.pxPerCM),
			Y: roundCM(yPx / s.pxPerCM),
			Z: roundCM(zPx / s.pxPerCM),
		}
	}
	return out, nil
}

// roundCM rounds a centimeter value to one decimal place.
func roundCM(v float64) float64 {
	return math.Round(v*10) / 10
}
