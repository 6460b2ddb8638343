package game

import (
	"scenesim/math32"
)

// Camera holds viewer state and derives the view and projection
// matrices the renderer consumes once per frame.
//
// The up vector must not be parallel to target-position; a degenerate
// pair propagates zero vectors through the derived matrices rather
// than erroring, per the normalize policy.
type Camera struct {
	// position is the eye; rotations orbit it around the origin,
	// movement operators act relative to target.
	position math32.Vector3
	target   math32.Vector3
	up       math32.Vector3

	fovy   float32
	aspect float32
	near   float32
	far    float32
}

// NewCamera returns a camera with the default pose looking at the
// origin, projecting onto a viewport of the given pixel size.
func NewCamera(width, height float32) *Camera {
	return &Camera{
		position: math32.V3(-0.3, 0.2, 0),
		target:   math32.Vector3{},
		up:       math32.UnitY(),
		fovy:     math32.Pi / 4,
		aspect:   width / height,
		near:     0.1,
		far:      1000,
	}
}

func (c *Camera) Position() math32.Vector3 {
	return c.position
}

func (c *Camera) Target() math32.Vector3 {
	return c.target
}

func (c *Camera) Aspect() float32 {
	return c.aspect
}

func (c *Camera) SetPosition(position math32.Vector3) {
	c.position = position
}

func (c *Camera) SetTarget(target math32.Vector3) {
	c.target = target
}

func (c *Camera) SetUp(up math32.Vector3) {
	c.up = up
}

// SetLens replaces the projection parameters. Callers must keep
// far > near; the projection is undefined otherwise.
func (c *Camera) SetLens(fovy, near, far float32) {
	c.fovy = fovy
	c.near = near
	c.far = far
}

// SetAspectRatio updates the projection for a resized viewport.
// Callers must guard height != 0.
func (c *Camera) SetAspectRatio(width, height float32) {
	c.aspect = width / height
}

// Follow retargets the camera while keeping the current offset from
// the target, so the viewing angle is preserved.
func (c *Camera) Follow(target math32.Vector3) {
	offset := target.Sub(c.target)
	c.target = target
	c.position = c.position.Add(offset)
}

// RotateX orbits the eye around the origin-relative x axis by
// theta*dt radians.
func (c *Camera) RotateX(dt, theta float32) {
	c.position = math32.RotationX(theta * dt).MulVector(c.position)
}

func (c *Camera) RotateY(dt, theta float32) {
	c.position = math32.RotationY(theta * dt).MulVector(c.position)
}

func (c *Camera) RotateZ(dt, theta float32) {
	c.position = math32.RotationZ(theta * dt).MulVector(c.position)
}

// Forward dollies the eye toward the target. Only the position moves,
// so repeated calls change the viewing angle.
func (c *Camera) Forward(dt, speed float32) {
	forward := c.target.Sub(c.position).Normalize()
	c.position = c.position.Add(forward.MulScalar(speed * dt))
}

// Strafe pans the camera sideways, positive speed moving right. Both
// position and target shift by the same delta, so the look direction
// is unchanged.
func (c *Camera) Strafe(dt, speed float32) {
	forward := c.target.Sub(c.position).Normalize()
	right := forward.Cross(c.up).Normalize()

	delta := right.MulScalar(speed * dt)

	c.position = c.position.Add(delta)
	c.target = c.target.Add(delta)
}

// Zoom integrates the field of view by rate*dt radians. Angles are
// not clamped; callers are responsible for keeping fovy sane.
func (c *Camera) Zoom(dt, rate float32) {
	c.fovy += rate * dt
}

// ViewMatrix is the right-handed world-to-eye transform.
func (c *Camera) ViewMatrix() math32.Matrix4 {
	forward := c.target.Sub(c.position).Normalize()
	right := forward.Cross(c.up).Normalize()
	up := right.Cross(forward).Normalize()

	return math32.Matrix4{
		X: math32.V4(right.X, up.X, -forward.X, 0),
		Y: math32.V4(right.Y, up.Y, -forward.Y, 0),
		Z: math32.V4(right.Z, up.Z, -forward.Z, 0),
		W: math32.V4(
			-right.Dot(c.position),
			-up.Dot(c.position),
			forward.Dot(c.position),
			1,
		),
	}
}

// ProjectionMatrix is the right-handed perspective transform derived
// from fovy, aspect, near and far. Callers must guarantee far > near.
func (c *Camera) ProjectionMatrix() math32.Matrix4 {
	tanHalfFov := 1 / math32.Tan(c.fovy/2)
	rng := c.far - c.near
	depth := -(c.far + c.near) / rng
	project := -(2 * c.far * c.near) / rng

	return math32.Matrix4{
		X: math32.V4(tanHalfFov/c.aspect, 0, 0, 0),
		Y: math32.V4(0, tanHalfFov, 0, 0),
		Z: math32.V4(0, 0, depth, -1),
		W: math32.V4(0, 0, project, 0),
	}
}

// ViewProjection is the combined world-to-clip transform uploaded to
// the GPU each frame; the projection applies last.
func (c *Camera) ViewProjection() math32.Matrix4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
