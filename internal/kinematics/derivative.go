package kinematics

// Derivatives approximates the first derivative of a scalar series
// using a three-zone finite-difference scheme:
//
//   - within window/2 of the start, a forward difference
//     series[i+1] - series[i]
//   - within window/2 of the end, a backward difference
//     series[i] - series[i-1]
//   - elsewhere, a centered difference
//     (series[i+window/2] - series[i-window/2]) / window
//
// The output has the same length as the input; boundary samples
// without a valid forward or backward neighbor keep 0.0. Units are
// per-sample (degrees per sample for angle series). A second
// derivative is obtained by applying the same scheme to the first
// derivative series.
func Derivatives(series []float64, window int) []float64 {
	n := len(series)
	out := make([]float64, n)
	if n == 0 || window <= 0 {
		return out
	}

	half := window / 2
	for i := 0; i < n; i++ {
		switch {
		case i < half:
			if i+1 < n {
				out[i] = series[i+1] - series[i]
			}
		case i >= n-half:
			if i-1 >= 0 {
				out[i] = series[i] - series[i-1]
			}
		default:
			out[i] = (series[i+half] - series[i-half]) / float64(window)
		}
	}
	return out
}
