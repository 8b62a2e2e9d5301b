package turtle

import "math"

var startOrientation = map[Mode]Vec2{
	ModeStandard: {1, 0},
	ModeLogo:     {0, 1},
}

// Navigator is the geometric state of a turtle: position, orientation and
// the angle convention used to read and write headings. It draws nothing.
//
// Rotations always happen counterclockwise for positive internal angles; the
// mode only changes how headings are reported and interpreted.
type Navigator struct {
	mode        Mode
	fullcircle  float64
	degreesPer  float64
	angleOffset float64
	angleOrient float64

	position Vec2
	orient   Vec2
}

// NewNavigator returns a navigator in standard mode measuring degrees.
func NewNavigator() Navigator {
	n := Navigator{mode: ModeStandard, angleOrient: 1}
	n.setFullcircle(360)
	n.Reset()
	return n
}

// Reset moves to the origin facing the mode's start direction.
func (n *Navigator) Reset() {
	n.position = Vec2{}
	n.orient = startOrientation[n.mode]
}

// Mode returns the current heading convention.
func (n *Navigator) Mode() Mode { return n.mode }

// SetMode switches the heading convention and resets position and
// orientation. The angle unit is kept.
func (n *Navigator) SetMode(m Mode) {
	n.mode = m
	if m == ModeStandard {
		n.angleOffset = 0
		n.angleOrient = 1
	} else {
		n.angleOffset = n.fullcircle / 4
		n.angleOrient = -1
	}
	n.Reset()
}

func (n *Navigator) setFullcircle(fullcircle float64) {
	n.fullcircle = fullcircle
	n.degreesPer = 360 / fullcircle
	if n.mode == ModeStandard {
		n.angleOffset = 0
	} else {
		n.angleOffset = fullcircle / 4
	}
}

// Degrees sets the angle unit so that fullcircle units make one turn.
func (n *Navigator) Degrees(fullcircle float64) error {
	if fullcircle <= 0 || math.IsNaN(fullcircle) || math.IsInf(fullcircle, 0) {
		return argError("fullcircle %v", fullcircle)
	}
	n.setFullcircle(fullcircle)
	return nil
}

// Radians sets the angle unit to radians.
func (n *Navigator) Radians() {
	n.setFullcircle(2 * math.Pi)
}

// Fullcircle returns the number of angle units in one turn.
func (n *Navigator) Fullcircle() float64 { return n.fullcircle }

// DegreesPerUnit returns how many degrees one angle unit spans.
func (n *Navigator) DegreesPerUnit() float64 { return n.degreesPer }

// Pos returns the current position.
func (n *Navigator) Pos() Vec2 { return n.position }

// XCor returns the x coordinate.
func (n *Navigator) XCor() float64 { return n.position.X }

// YCor returns the y coordinate.
func (n *Navigator) YCor() float64 { return n.position.Y }

// Orientation returns the unit direction vector.
func (n *Navigator) Orientation() Vec2 { return n.orient }

// Ahead returns the point distance units along the current orientation.
func (n *Navigator) Ahead(distance float64) Vec2 {
	return n.position.Add(n.orient.Mul(distance))
}

// Forward moves distance units along the orientation.
func (n *Navigator) Forward(distance float64) {
	n.position = n.Ahead(distance)
}

// Back moves distance units against the orientation.
func (n *Navigator) Back(distance float64) {
	n.position = n.Ahead(-distance)
}

// Left turns by angle units.
func (n *Navigator) Left(angle float64) {
	n.orient = n.orient.Rotate(angle * n.degreesPer)
}

// Right turns by -angle units.
func (n *Navigator) Right(angle float64) {
	n.Left(-angle)
}

// Goto sets the position.
func (n *Navigator) Goto(p Vec2) {
	n.position = p
}

// Distance returns the distance from the current position to p.
func (n *Navigator) Distance(p Vec2) float64 {
	return p.Sub(n.position).Abs()
}

// Heading returns the current heading in the active convention.
func (n *Navigator) Heading() float64 {
	return n.angleOf(n.orient)
}

// Towards returns the heading that would point at p.
func (n *Navigator) Towards(p Vec2) float64 {
	return n.angleOf(p.Sub(n.position))
}

func (n *Navigator) angleOf(d Vec2) float64 {
	deg := math.Round(math.Atan2(d.Y, d.X)*180/math.Pi*1e10) / 1e10
	result := floorMod(deg, 360) / n.degreesPer
	return floorMod(n.angleOffset+n.angleOrient*result, n.fullcircle)
}

// HeadingDelta returns the left turn, in angle units, that takes the
// current heading to target along the shortest way. The result lies in
// [-fullcircle/2, fullcircle/2).
func (n *Navigator) HeadingDelta(target float64) float64 {
	angle := (target - n.Heading()) * n.angleOrient
	full := n.fullcircle
	return floorMod(angle+full/2, full) - full/2
}

// SetHeading turns to face target.
func (n *Navigator) SetHeading(target float64) {
	n.Left(n.HeadingDelta(target))
}

// ArcPlan is the inscribed-polygon approximation of an arc: Steps chords of
// length Chord, each followed by a left turn of Turn units, bracketed by a
// half turn before and after.
type ArcPlan struct {
	Steps    int
	Chord    float64
	Turn     float64
	HalfTurn float64
}

// PlanArc computes the polygon approximation for an arc of the given radius
// and extent. steps <= 0 selects the step count from the radius.
func (n *Navigator) PlanArc(radius, extent float64, steps int) ArcPlan {
	if steps <= 0 {
		frac := math.Abs(extent) / n.fullcircle
		steps = 1 + int(math.Min(11+math.Abs(radius)/6, 59)*frac)
	}
	w := extent / float64(steps)
	w2 := 0.5 * w
	l := 2 * radius * math.Sin(w2*math.Pi/180*n.degreesPer)
	if radius < 0 {
		l, w, w2 = -l, -w, -w2
	}
	return ArcPlan{Steps: steps, Chord: l, Turn: w, HalfTurn: w2}
}

// Circle walks the arc without any drawing.
func (n *Navigator) Circle(radius, extent float64, steps int) {
	p := n.PlanArc(radius, extent, steps)
	n.Left(p.HalfTurn)
	for i := 0; i < p.Steps; i++ {
		n.Forward(p.Chord)
		n.Left(p.Turn)
	}
	n.Left(-p.HalfTurn)
}

func floorMod(a, b float64) float64 {
	r := a - b*math.Floor(a/b)
	if r >= b {
		return 0
	}
	return r
}
