// Package pose defines the frame and landmark data model shared by every
// stage of the analysis pipeline.
package pose

import "github.com/golang/geo/r3"

// LandmarkID identifies one of the 33 body landmarks following the
// MediaPipe Pose convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
type LandmarkID int

const (
	Nose LandmarkID = iota
	LeftEyeInner
	LeftEye
	LeftEyeOuter
	RightEyeInner
	RightEye
	RightEyeOuter
	LeftEar
	RightEar
	MouthLeft
	MouthRight
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftPinky
	RightPinky
	LeftIndex
	RightIndex
	LeftThumb
	RightThumb
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	LeftHeel
	RightHeel
	LeftFootIndex
	RightFootIndex

	// NumLandmarks is the size of the landmark vocabulary.
	NumLandmarks = 33
)

// landmarkNames maps every LandmarkID to its wire name.
var landmarkNames = [NumLandmarks]string{
	Nose:           "nose",
	LeftEyeInner:   "left_eye_inner",
	LeftEye:        "left_eye",
	LeftEyeOuter:   "left_eye_outer",
	RightEyeInner:  "right_eye_inner",
	RightEye:       "right_eye",
	RightEyeOuter:  "right_eye_outer",
	LeftEar:        "left_ear",
	RightEar:       "right_ear",
	MouthLeft:      "mouth_left",
	MouthRight:     "mouth_right",
	LeftShoulder:   "left_shoulder",
	RightShoulder:  "right_shoulder",
	LeftElbow:      "left_elbow",
	RightElbow:     "right_elbow",
	LeftWrist:      "left_wrist",
	RightWrist:     "right_wrist",
	LeftPinky:      "left_pinky",
	RightPinky:     "right_pinky",
	LeftIndex:      "left_index",
	RightIndex:     "right_index",
	LeftThumb:      "left_thumb",
	RightThumb:     "right_thumb",
	LeftHip:        "left_hip",
	RightHip:       "right_hip",
	LeftKnee:       "left_knee",
	RightKnee:      "right_knee",
	LeftAnkle:      "left_ankle",
	RightAnkle:     "right_ankle",
	LeftHeel:       "left_heel",
	RightHeel:      "right_heel",
	LeftFootIndex:  "left_foot_index",
	RightFootIndex: "right_foot_index",
}

// landmarkIDs is the reverse of landmarkNames, built once at init.
var landmarkIDs = func() map[string]LandmarkID {
	ids := make(map[string]LandmarkID, NumLandmarks)
	for id, name := range landmarkNames {
		ids[name] = LandmarkID(id)
	}
	return ids
}()

// Name returns the wire name for the landmark, or "" if the id is out
// of range.
func (id LandmarkID) Name() string {
	if id < 0 || id >= NumLandmarks {
		return ""
	}
	return landmarkNames[id]
}

// ParseLandmarkID resolves a wire name to its LandmarkID.
// The second return value reports whether the name is known.
func ParseLandmarkID(name string) (LandmarkID, bool) {
	id, ok := landmarkIDs[name]
	return id, ok
}

// Landmark is one detected 3D body keypoint. X and Y are normalized to
// the image (0-1) upstream; after normalization they are unit-free in
// shoulder-width units. Z is depth on the same relative scale as X.
// Visibility is an optional detection confidence in [0,1]; a nil
// visibility means the landmark is treated as fully visible.
type Landmark struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Z          float64  `json:"z"`
	Visibility *float64 `json:"visibility,omitempty"`
}

// Vis returns the visibility confidence, defaulting to 1.0 when the
// upstream detector did not report one.
func (l Landmark) Vis() float64 {
	if l.Visibility == nil {
		return 1.0
	}
	return *l.Visibility
}

// Vec returns the landmark position as a 3D vector.
func (l Landmark) Vec() r3.Vector {
	return r3.Vector{X: l.X, Y: l.Y, Z: l.Z}
}

// Visibility values below this threshold mark a landmark as unreliable
// for measurement purposes.
const MinVisibility = 0.5
