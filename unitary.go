package qsim

import "math/cmplx"

// unitaryTolerance bounds the per-entry deviation of M·M† from identity.
const unitaryTolerance = 1e-9

/*
IsUnitary reports whether the matrix is square and its product with its own
conjugate transpose is the identity within tolerance. Every custom gate must
pass this check before it is allowed anywhere near a state vector.
*/
func IsUnitary(m Matrix) bool {
	n := m.Dim()
	if n == 0 {
		return false
	}
	for _, row := range m {
		if len(row) != n {
			return false
		}
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			// Entry (r, c) of M·M†.
			var sum complex128
			for j := 0; j < n; j++ {
				sum += m[r][j] * cmplx.Conj(m[c][j])
			}
			want := complex128(0)
			if r == c {
				want = 1
			}
			if cmplx.Abs(sum-want) > unitaryTolerance {
				return false
			}
		}
	}
	return true
}
