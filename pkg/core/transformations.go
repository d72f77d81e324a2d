package core

import "math"

// Translation returns a matrix that moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix4 {
	m := Identity4()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a matrix that scales each axis independently
func Scaling(x, y, z float64) Matrix4 {
	m := Identity4()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a rotation of r radians around the x axis (left-handed)
func RotationX(r float64) Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity4()
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationY returns a rotation of r radians around the y axis (left-handed)
func RotationY(r float64) Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity4()
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationZ returns a rotation of r radians around the z axis (left-handed)
func RotationZ(r float64) Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity4()
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shearing moves each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	m := Identity4()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// ViewTransform orients the world relative to an eye at from, looking at to
func ViewTransform(from, to, up Tuple) Matrix4 {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
