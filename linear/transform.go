package linear

import "math"

// Translation returns the affine matrix that translates by t.
func Translation(t V3) M4 {
	m := IdentityM4()
	m[3] = V4{t[0], t[1], t[2], 1}
	return m
}

// Scaling returns the matrix that scales by s along each axis.
func Scaling(s V3) M4 {
	return M4{
		{s[0], 0, 0, 0},
		{0, s[1], 0, 0},
		{0, 0, s[2], 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns the matrix that rotates by angle radians about the
// x axis.
func RotationX(angle float32) M4 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	return M4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns the matrix that rotates by angle radians about the
// y axis.
func RotationY(angle float32) M4 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	return M4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns the matrix that rotates by angle radians about the
// z axis.
func RotationZ(angle float32) M4 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	return M4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// RotationZYX composes the rotation the mesh transform uses: yaw about
// y, pitch about x, roll about z, applied as Rz(roll) . Ry(yaw) . Rx(pitch).
func RotationZYX(yaw, pitch, roll float32) M4 {
	return RotationZ(roll).Mul(RotationY(yaw)).Mul(RotationX(pitch))
}

// FromScaleRotationTranslation composes the model transform
// translate . rotate . scale, the standard TRS order.
func FromScaleRotationTranslation(scale V3, rotate M4, translate V3) M4 {
	return Translation(translate).Mul(rotate).Mul(Scaling(scale))
}

// Perspective returns a right-handed perspective projection matrix
// with fovY given in radians and a depth range mapped to [-1, 1] in
// NDC, matching the convention the rasterizer's depth test assumes.
func Perspective(fovY, aspect, zNear, zFar float32) M4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	nf := 1 / (zNear - zFar)
	return M4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (zFar + zNear) * nf, -1},
		{0, 0, 2 * zFar * zNear * nf, 0},
	}
}

// LookAt returns the right-handed view matrix for a camera at eye
// looking at target, with the given up direction.
func LookAt(eye, target, up V3) M4 {
	f := target.Sub(eye).Norm()
	s := f.Cross(up).Norm()
	u := s.Cross(f)
	return M4{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}
