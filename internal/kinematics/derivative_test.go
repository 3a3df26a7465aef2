package kinematics

import (
	"math"
	"testing"
)

func TestDerivatives_ConstantSeriesIsZero(t *testing.T) {
	series := make([]float64, 20)
	for i := range series {
		series[i] = 137.5
	}

	d1 := Derivatives(series, 5)
	d2 := Derivatives(d1, 5)

	for i := range series {
		if d1[i] != 0 {
			t.Errorf("first derivative at %d = %f, want 0", i, d1[i])
		}
		if d2[i] != 0 {
			t.Errorf("second derivative at %d = %f, want 0", i, d2[i])
		}
	}
}

func TestDerivatives_LinearRamp(t *testing.T) {
	// series[i] = i with window 4: forward and backward differences are
	// 1, and the centered difference (series[i+2]-series[i-2])/4 is 1.
	series := []float64{0, 1, 2, 3, 4, 5}

	got := Derivatives(series, 4)
	for i, v := range got {
		if math.Abs(v-1.0) > 1e-9 {
			t.Errorf("derivative at %d = %f, want 1", i, v)
		}
	}
}

func TestDerivatives_ThreeZones(t *testing.T) {
	series := []float64{0, 10, 0, 30, 0, 50}

	got := Derivatives(series, 4)

	// Start zone (i < 2): forward differences.
	if got[0] != 10 {
		t.Errorf("got[0] = %f, want 10", got[0])
	}
	if got[1] != -10 {
		t.Errorf("got[1] = %f, want -10", got[1])
	}
	// Middle zone: centered differences over the window.
	if want := (series[4] - series[0]) / 4; got[2] != want {
		t.Errorf("got[2] = %f, want %f", got[2], want)
	}
	if want := (series[5] - series[1]) / 4; got[3] != want {
		t.Errorf("got[3] = %f, want %f", got[3], want)
	}
	// End zone (i >= len-2): backward differences.
	if got[4] != -30 {
		t.Errorf("got[4] = %f, want -30", got[4])
	}
	if got[5] != 50 {
		t.Errorf("got[5] = %f, want 50", got[5])
	}
}

func TestDerivatives_PreservesLength(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 31} {
		series := make([]float64, n)
		if got := len(Derivatives(series, 5)); got != n {
			t.Errorf("length %d in, %d out", n, got)
		}
	}
}

func TestDerivatives_SingleSampleStaysZero(t *testing.T) {
	got := Derivatives([]float64{42}, 5)
	if got[0] != 0 {
		t.Errorf("single-sample derivative = %f, want 0", got[0])
	}
}

func TestDerivatives_NonPositiveWindow(t *testing.T) {
	series := []float64{1, 2, 3}
	got := Derivatives(series, 0)
	for i, v := range got {
		if v != 0 {
			t.Errorf("got[%d] = %f, want 0 for window 0", i, v)
		}
	}
}
