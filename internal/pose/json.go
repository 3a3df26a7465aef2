package pose

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// jsonFrame is the wire representation of one frame record.
// Landmarks are keyed by landmark name; unknown names are ignored so an
// upstream detector may extend its vocabulary without breaking us.
// Absent rule_based_label / final_label keys mean the empty label.
type jsonFrame struct {
	Landmarks      map[string]Landmark `json:"landmarks"`
	Label          string              `json:"label,omitempty"`
	SmoothedLabel  string              `json:"smoothed_label,omitempty"`
	JointAngles    map[string]float64  `json:"joint_angles,omitempty"`
	DeltaAngles    map[string]float64  `json:"delta_angles,omitempty"`
	Delta2Angles   map[string]float64  `json:"delta2_angles,omitempty"`
	RuleBasedLabel string              `json:"rule_based_label,omitempty"`
	FinalLabel     string              `json:"final_label,omitempty"`
}

func (f Frame) toJSON() jsonFrame {
	out := jsonFrame{
		Landmarks:      make(map[string]Landmark, len(f.Landmarks)),
		Label:          f.Label,
		SmoothedLabel:  f.SmoothedLabel,
		JointAngles:    f.JointAngles,
		DeltaAngles:    f.DeltaAngles,
		Delta2Angles:   f.Delta2Angles,
		RuleBasedLabel: f.RuleBasedLabel,
		FinalLabel:     f.FinalLabel,
	}
	for id, l := range f.Landmarks {
		out.Landmarks[id.Name()] = l
	}
	return out
}

func (jf jsonFrame) toFrame() Frame {
	f := Frame{
		Landmarks:      make(map[LandmarkID]Landmark, len(jf.Landmarks)),
		Label:          jf.Label,
		SmoothedLabel:  jf.SmoothedLabel,
		JointAngles:    jf.JointAngles,
		DeltaAngles:    jf.DeltaAngles,
		Delta2Angles:   jf.Delta2Angles,
		RuleBasedLabel: jf.RuleBasedLabel,
		FinalLabel:     jf.FinalLabel,
	}
	for name, l := range jf.Landmarks {
		if id, ok := ParseLandmarkID(name); ok {
			f.Landmarks[id] = l
		}
	}
	return f
}

// MarshalJSON encodes the frame in the wire shape.
func (f Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.toJSON())
}

// UnmarshalJSON decodes the frame from the wire shape.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var jf jsonFrame
	if err := json.Unmarshal(data, &jf); err != nil {
		return err
	}
	*f = jf.toFrame()
	return nil
}

// metadataKey is the reserved sequence entry carrying pipeline
// bookkeeping; it is not itself a frame.
const metadataKey = "_metadata"

// MarshalJSON encodes the sequence as a mapping from string frame id to
// frame record, with metadata under the reserved "_metadata" entry.
func (s Sequence) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Frames)+1)
	for id, f := range s.Frames {
		out[strconv.Itoa(id)] = f
	}
	if len(s.Meta) > 0 {
		out[metadataKey] = s.Meta
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the sequence from the wire mapping. Frame keys
// must be non-negative integers; anything else (other than the
// reserved metadata entry) is an error.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := NewSequence()
	for key, msg := range raw {
		if key == metadataKey {
			if err := json.Unmarshal(msg, &out.Meta); err != nil {
				return fmt.Errorf("parse metadata: %w", err)
			}
			continue
		}

		id, err := strconv.Atoi(key)
		if err != nil || id < 0 {
			return fmt.Errorf("invalid frame id %q", key)
		}

		var f Frame
		if err := json.Unmarshal(msg, &f); err != nil {
			return fmt.Errorf("parse frame %d: %w", id, err)
		}
		out.Frames[id] = f
	}

	*s = out
	return nil
}
