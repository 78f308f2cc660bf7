package linear

// M2 is a column-major 2x2 matrix of float32.
type M2 [2]V2

// IdentityM2 returns the 2x2 identity matrix.
func IdentityM2() M2 { return M2{{1, 0}, {0, 1}} }

// Mul returns m . n.
func (m M2) Mul(n M2) M2 {
	var r M2
	for i := range r {
		for j := range r {
			for k := range r {
				r[i][j] += m[k][j] * n[i][k]
			}
		}
	}
	return r
}

// M3 is a column-major 3x3 matrix of float32.
type M3 [3]V3

// IdentityM3 returns the 3x3 identity matrix.
func IdentityM3() M3 { return M3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

// Mul returns m . n.
func (m M3) Mul(n M3) M3 {
	var r M3
	for i := range r {
		for j := range r {
			for k := range r {
				r[i][j] += m[k][j] * n[i][k]
			}
		}
	}
	return r
}

// Transpose returns the transpose of m.
func (m M3) Transpose() M3 {
	var r M3
	for i := range r {
		for j := range r {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// IdentityM4 returns the 4x4 identity matrix.
func IdentityM4() M4 { return M4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}} }

// Mul returns m . n, i.e. the transform that applies n first, then m.
func (m M4) Mul(n M4) M4 {
	var r M4
	for i := range r {
		for j := range r {
			for k := range r {
				r[i][j] += m[k][j] * n[i][k]
			}
		}
	}
	return r
}

// Transpose returns the transpose of m.
func (m M4) Transpose() M4 {
	var r M4
	for i := range r {
		for j := range r {
			r[i][j] = m[j][i]
		}
	}
	return r
}
