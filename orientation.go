package cube

import (
	"math"

	"github.com/westphae/quaternion"
)

// Orientation reports which home faces currently point up and towards the
// viewer. A reset cube is {Up: FaceU, Front: FaceF}.
//
// Only whole-cube rotations (X, Y, Z) move it. A wide turn through every
// layer moves all stickers too but is not counted as a rotation.
type Orientation struct {
	Up    Face `json:"up"`
	Front Face `json:"front"`
}

// Body axes: x points out of R, y out of U, z out of F.
var (
	identityRotation = quaternion.Quaternion{W: 1}

	faceNormals = [6]quaternion.Vec3{
		FaceU: {X: 0, Y: 1, Z: 0},
		FaceL: {X: -1, Y: 0, Z: 0},
		FaceF: {X: 0, Y: 0, Z: 1},
		FaceR: {X: 1, Y: 0, Z: 0},
		FaceB: {X: 0, Y: 0, Z: -1},
		FaceD: {X: 0, Y: -1, Z: 0},
	}

	// Clockwise seen from the face the axis is named after, which is a
	// negative angle about the outward normal.
	axisQuarters = map[Target]quaternion.Quaternion{
		TargetX: axisAngle(faceNormals[FaceR], -math.Pi/2),
		TargetY: axisAngle(faceNormals[FaceU], -math.Pi/2),
		TargetZ: axisAngle(faceNormals[FaceF], -math.Pi/2),
	}
)

func axisAngle(axis quaternion.Vec3, angle float64) quaternion.Quaternion {
	s := math.Sin(angle / 2)
	return quaternion.Quaternion{
		W: math.Cos(angle / 2),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// rotateBody composes an axis turn onto the accumulated rotation.
func rotateBody(q quaternion.Quaternion, t Turn) quaternion.Quaternion {
	step, ok := axisQuarters[t.Target]
	if !ok {
		return q
	}
	quarters, err := t.Rotation.quarters()
	if err != nil {
		return q
	}
	for i := 0; i < quarters; i++ {
		q = quaternion.Prod(step, q).Unit()
	}
	return q
}

// rotateVec applies q to v and snaps the result to the nearest axis.
func rotateVec(q quaternion.Quaternion, v quaternion.Vec3) quaternion.Vec3 {
	p := q.RotateVec3(v)
	return quaternion.Vec3{
		X: math.Round(p.X),
		Y: math.Round(p.Y),
		Z: math.Round(p.Z),
	}
}

// faceAt returns the home face whose normal q carries onto dir.
func faceAt(q quaternion.Quaternion, dir quaternion.Vec3) Face {
	for _, f := range Faces {
		if rotateVec(q, faceNormals[f]) == dir {
			return f
		}
	}
	return FaceU
}

// Orientation returns the cube's current orientation.
func (c *Cube) Orientation() Orientation {
	return Orientation{
		Up:    faceAt(c.rotation, faceNormals[FaceU]),
		Front: faceAt(c.rotation, faceNormals[FaceF]),
	}
}
