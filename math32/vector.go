package math32

import (
	"fmt"
)

// Vector3 is a single precision point, direction or non-uniform scale.
// Field order matches the flat layout GPU buffers expect.
type Vector3 struct {
	X, Y, Z float32
}

func V3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// UnitX, UnitY and UnitZ are the canonical basis directions.
func UnitX() Vector3 { return Vector3{1, 0, 0} }
func UnitY() Vector3 { return Vector3{0, 1, 0} }
func UnitZ() Vector3 { return Vector3{0, 0, 1} }

func (self Vector3) String() string {
	return fmt.Sprintf("%5.2f %5.2f %5.2f", self.X, self.Y, self.Z)
}

func (self Vector3) Equals(v Vector3, precision int) bool {
	p := precisionEpsilon(precision)

	return (NearlyEquals(self.X, v.X, p) &&
		NearlyEquals(self.Y, v.Y, p) &&
		NearlyEquals(self.Z, v.Z, p))
}

func (self Vector3) Float32() [3]float32 {
	return [3]float32{self.X, self.Y, self.Z}
}

func (self Vector3) Length() float32 {
	return Sqrt(self.Dot(self))
}

func (self Vector3) Dot(v Vector3) float32 {
	return self.X*v.X + self.Y*v.Y + self.Z*v.Z
}

func (self Vector3) Cross(v Vector3) Vector3 {
	return Vector3{
		self.Y*v.Z - self.Z*v.Y,
		self.Z*v.X - self.X*v.Z,
		self.X*v.Y - self.Y*v.X,
	}
}

// Normalize returns the unit vector pointing in the same direction.
// The zero vector has no direction and normalizes to itself instead
// of dividing by zero.
func (self Vector3) Normalize() Vector3 {
	l := self.Length()
	if l == 0 {
		return Vector3{}
	}

	return Vector3{
		self.X / l,
		self.Y / l,
		self.Z / l,
	}
}

func (self Vector3) Add(v Vector3) Vector3 {
	return Vector3{
		self.X + v.X,
		self.Y + v.Y,
		self.Z + v.Z,
	}
}

func (self Vector3) Sub(v Vector3) Vector3 {
	return Vector3{
		self.X - v.X,
		self.Y - v.Y,
		self.Z - v.Z,
	}
}

// Mul is the component-wise product.
func (self Vector3) Mul(v Vector3) Vector3 {
	return Vector3{
		self.X * v.X,
		self.Y * v.Y,
		self.Z * v.Z,
	}
}

func (self Vector3) MulScalar(s float32) Vector3 {
	return Vector3{
		self.X * s,
		self.Y * s,
		self.Z * s,
	}
}

func (self Vector3) Negate() Vector3 {
	return Vector3{-self.X, -self.Y, -self.Z}
}

func (self Vector3) DistanceTo(v Vector3) float32 {
	return self.Sub(v).Length()
}

// Vector4 is a homogeneous coordinate, also used as a matrix column.
type Vector4 struct {
	X, Y, Z, W float32
}

func V4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

func (self Vector4) String() string {
	return fmt.Sprintf("%5.2f %5.2f %5.2f %5.2f", self.X, self.Y, self.Z, self.W)
}

func (self Vector4) Equals(v Vector4, precision int) bool {
	p := precisionEpsilon(precision)

	return (NearlyEquals(self.X, v.X, p) &&
		NearlyEquals(self.Y, v.Y, p) &&
		NearlyEquals(self.Z, v.Z, p) &&
		NearlyEquals(self.W, v.W, p))
}

func (self Vector4) Float32() [4]float32 {
	return [4]float32{self.X, self.Y, self.Z, self.W}
}

func (self Vector4) Dot(v Vector4) float32 {
	return self.X*v.X + self.Y*v.Y + self.Z*v.Z + self.W*v.W
}

func (self Vector4) Add(v Vector4) Vector4 {
	return Vector4{
		self.X + v.X,
		self.Y + v.Y,
		self.Z + v.Z,
		self.W + v.W,
	}
}

func (self Vector4) MulScalar(s float32) Vector4 {
	return Vector4{
		self.X * s,
		self.Y * s,
		self.Z * s,
		self.W * s,
	}
}

// Vector3 drops the homogeneous component.
func (self Vector4) Vector3() Vector3 {
	return Vector3{self.X, self.Y, self.Z}
}
