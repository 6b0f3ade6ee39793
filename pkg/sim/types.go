package sim

import (
	"math"

	"github.com/golang/geo/r2"
)

// Pos2D defines the position in 2D.
type Pos2D struct {
	X, Y float64
}

// Pose2D defines the pose in 2D.
type Pose2D struct {
	Pos2D
	Orientation Angle
}

// Angle is the common representation of angle,
// supporting multiple units.
type Angle float64

// Vec converts the position into a vector.
func (p Pos2D) Vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Pos2DFromVec converts a vector into Pos2D.
func Pos2DFromVec(v r2.Point) Pos2D {
	return Pos2D{X: v.X, Y: v.Y}
}

// Add is a helper to add Pos2D.
func (p Pos2D) Add(p1 Pos2D) Pos2D {
	return Pos2DFromVec(p.Vec().Add(p1.Vec()))
}

// Sub returns the vector from p1 to p.
func (p Pos2D) Sub(p1 Pos2D) Pos2D {
	return Pos2DFromVec(p.Vec().Sub(p1.Vec()))
}

// OffsetBy performs Add in-place.
func (p *Pos2D) OffsetBy(p1 Pos2D) *Pos2D {
	p.X += p1.X
	p.Y += p1.Y
	return p
}

// DistanceTo is the euclidean distance between two positions.
func (p Pos2D) DistanceTo(p1 Pos2D) float64 {
	return p1.Vec().Sub(p.Vec()).Norm()
}

// BearingTo is the direction from p towards p1, zero along +X.
// A zero-length vector yields a zero angle.
func (p Pos2D) BearingTo(p1 Pos2D) Angle {
	d := p1.Sub(p)
	return AngleFromRadians(math.Atan2(d.Y, d.X))
}

// IsFinite reports whether both components are finite numbers.
func (p Pos2D) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
