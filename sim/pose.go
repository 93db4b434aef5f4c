package sim

import "math"

// Pose is a position in meters and a heading in radians, counter-clockwise
// from the X axis.
type Pose struct{ X, Y, Heading float64 }

func (p Pose) Equal(b Pose) bool {
	return p.X == b.X && p.Y == b.Y && p.Heading == b.Heading
}

// Distance will return the 2D distance between p and b.
func (p Pose) Distance(b Pose) float64 {
	return math.Hypot(b.X-p.X, b.Y-p.Y)
}

// normalize wraps h into (-pi, pi].
func normalize(h float64) float64 {
	h = math.Mod(h, 2*math.Pi)
	if h <= -math.Pi {
		h += 2 * math.Pi
	} else if h > math.Pi {
		h -= 2 * math.Pi
	}
	return h
}

// advance integrates a constant linear speed v and turn rate w over dt.
func (p Pose) advance(v, w, dt float64) Pose {
	if w == 0 {
		p.X += v * dt * math.Cos(p.Heading)
		p.Y += v * dt * math.Sin(p.Heading)
		return p
	}

	r := v / w
	h := p.Heading + w*dt
	p.X += r * (math.Sin(h) - math.Sin(p.Heading))
	p.Y -= r * (math.Cos(h) - math.Cos(p.Heading))
	p.Heading = normalize(h)
	return p
}
