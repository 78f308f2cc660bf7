package rangle

import "github.com/isikkema/rangle/linear"

// Camera computes a right-handed look-at view matrix from a position,
// a target it looks toward, and an up direction.
type Camera struct {
	position linear.V3
	target   linear.V3
	up       linear.V3
}

// NewCamera builds a Camera.
func NewCamera(position, target, up linear.V3) *Camera {
	return &Camera{position: position, target: target, up: up}
}

// ViewMatrix returns the right-handed look-at matrix for the camera's
// current position, target and up direction.
func (c *Camera) ViewMatrix() linear.M4 {
	return linear.LookAt(c.position, c.target, c.up)
}
