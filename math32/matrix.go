package math32

/*	column first, like opengl
	+-          -+ +-           -+ +-          -+
	| 0  4  8 12 | | Xx Yx Zx Wx | | 1  0  0  x |
	| 1  5  9 13 | | Xy Yy Zy Wy | | 0  1  0  y |
	| 2  6 10 14 | | Xz Yz Zz Wz | | 0  0  1  z |
	| 3  7 11 15 | | Xw Yw Zw Ww | | 0  0  0  1 |
	+-          -+ +-           -+ +-          -+
*/

// Matrix3 is a rotation basis, stored as three column vectors.
type Matrix3 struct {
	X, Y, Z Vector3
}

// RotationX is the right-handed rotation about the x axis,
// theta in radians.
func RotationX(theta float32) Matrix3 {
	cos := Cos(theta)
	sin := Sin(theta)

	return Matrix3{
		X: Vector3{1, 0, 0},
		Y: Vector3{0, cos, sin},
		Z: Vector3{0, -sin, cos},
	}
}

func RotationY(theta float32) Matrix3 {
	cos := Cos(theta)
	sin := Sin(theta)

	return Matrix3{
		X: Vector3{cos, 0, -sin},
		Y: Vector3{0, 1, 0},
		Z: Vector3{sin, 0, cos},
	}
}

func RotationZ(theta float32) Matrix3 {
	cos := Cos(theta)
	sin := Sin(theta)

	return Matrix3{
		X: Vector3{cos, sin, 0},
		Y: Vector3{-sin, cos, 0},
		Z: Vector3{0, 0, 1},
	}
}

func (self Matrix3) MulVector(v Vector3) Vector3 {
	return self.X.MulScalar(v.X).
		Add(self.Y.MulScalar(v.Y)).
		Add(self.Z.MulScalar(v.Z))
}

func (self Matrix3) Transpose() Matrix3 {
	return Matrix3{
		X: Vector3{self.X.X, self.Y.X, self.Z.X},
		Y: Vector3{self.X.Y, self.Y.Y, self.Z.Y},
		Z: Vector3{self.X.Z, self.Y.Z, self.Z.Z},
	}
}

func (self Matrix3) Float32() [9]float32 {
	return [9]float32{
		self.X.X, self.X.Y, self.X.Z,
		self.Y.X, self.Y.Y, self.Y.Z,
		self.Z.X, self.Z.Y, self.Z.Z,
	}
}

// Matrix4 is a homogeneous transform, stored as four column vectors.
// The struct is padding-free, so Float32 is a plain relayout and a
// Matrix4 value can be uploaded to a uniform buffer as-is.
type Matrix4 struct {
	X, Y, Z, W Vector4
}

func Identity() Matrix4 {
	return Matrix4{
		X: Vector4{1, 0, 0, 0},
		Y: Vector4{0, 1, 0, 0},
		Z: Vector4{0, 0, 1, 0},
		W: Vector4{0, 0, 0, 1},
	}
}

func FromTranslation(v Vector3) Matrix4 {
	return Matrix4{
		X: Vector4{1, 0, 0, 0},
		Y: Vector4{0, 1, 0, 0},
		Z: Vector4{0, 0, 1, 0},
		W: Vector4{v.X, v.Y, v.Z, 1},
	}
}

func FromScale(v Vector3) Matrix4 {
	return Matrix4{
		X: Vector4{v.X, 0, 0, 0},
		Y: Vector4{0, v.Y, 0, 0},
		Z: Vector4{0, 0, v.Z, 0},
		W: Vector4{0, 0, 0, 1},
	}
}

func (self Matrix4) String() string {
	return self.X.String() + "\n" +
		self.Y.String() + "\n" +
		self.Z.String() + "\n" +
		self.W.String()
}

func (self Matrix4) Equals(m Matrix4, precision int) bool {
	return (self.X.Equals(m.X, precision) &&
		self.Y.Equals(m.Y, precision) &&
		self.Z.Equals(m.Z, precision) &&
		self.W.Equals(m.W, precision))
}

// Float32 returns the column-major flat layout consumed by GPU
// uniform buffers.
func (self Matrix4) Float32() [16]float32 {
	return [16]float32{
		self.X.X, self.X.Y, self.X.Z, self.X.W,
		self.Y.X, self.Y.Y, self.Y.Z, self.Y.W,
		self.Z.X, self.Z.Y, self.Z.Z, self.Z.W,
		self.W.X, self.W.Y, self.W.Z, self.W.W,
	}
}

// MulVector applies the transform to a homogeneous coordinate.
func (self Matrix4) MulVector(v Vector4) Vector4 {
	return self.X.MulScalar(v.X).
		Add(self.Y.MulScalar(v.Y)).
		Add(self.Z.MulScalar(v.Z)).
		Add(self.W.MulScalar(v.W))
}

// TransformPoint applies the transform to a point, w = 1.
func (self Matrix4) TransformPoint(v Vector3) Vector3 {
	return self.MulVector(Vector4{v.X, v.Y, v.Z, 1}).Vector3()
}

// Mul composes two transforms. self.Mul(m) applied to a vector first
// applies m, then self.
func (self Matrix4) Mul(m Matrix4) Matrix4 {
	return Matrix4{
		X: self.MulVector(m.X),
		Y: self.MulVector(m.Y),
		Z: self.MulVector(m.Z),
		W: self.MulVector(m.W),
	}
}

func (self Matrix4) Transpose() Matrix4 {
	return Matrix4{
		X: Vector4{self.X.X, self.Y.X, self.Z.X, self.W.X},
		Y: Vector4{self.X.Y, self.Y.Y, self.Z.Y, self.W.Y},
		Z: Vector4{self.X.Z, self.Y.Z, self.Z.Z, self.W.Z},
		W: Vector4{self.X.W, self.Y.W, self.Z.W, self.W.W},
	}
}
