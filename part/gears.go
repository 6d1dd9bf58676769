package part

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/efficio-cad/efficio/internal/monitoring"
	"github.com/efficio-cad/efficio/solid"
)

// ErrInvoluteNotImplemented reports that involute tooth generation is
// not available. The profile is reserved so callers can select it once
// the generator exists.
var ErrInvoluteNotImplemented = errors.New("involute tooth profile not implemented")

// Profile selects the tooth outline used by Gear.
type Profile int

const (
	// ProfileRectangular teeth have parallel flanks.
	ProfileRectangular Profile = iota
	// ProfileTrapezoidal teeth taper to half width at the tip.
	ProfileTrapezoidal
	// ProfileInvolute is reserved and currently unavailable.
	ProfileInvolute
)

func (p Profile) String() string {
	switch p {
	case ProfileRectangular:
		return "rectangular"
	case ProfileTrapezoidal:
		return "trapezoidal"
	case ProfileInvolute:
		return "involute"
	}
	return fmt.Sprintf("profile(%d)", int(p))
}

// ParseProfile converts a profile name to a Profile.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangular":
		return ProfileRectangular, nil
	case "trapezoidal":
		return ProfileTrapezoidal, nil
	case "involute":
		return ProfileInvolute, nil
	}
	return 0, fmt.Errorf("unknown tooth profile %q (valid: rectangular, trapezoidal, involute)", s)
}

// topRatio is the tip-to-base width ratio of the straight-flank tooth
// generator. Rectangular teeth keep full width at the tip.
func (p Profile) topRatio() (float64, error) {
	switch p {
	case ProfileRectangular:
		return 1.0, nil
	case ProfileTrapezoidal:
		return 0.5, nil
	case ProfileInvolute:
		return 0, ErrInvoluteNotImplemented
	}
	return 0, fmt.Errorf("unknown tooth profile %d", int(p))
}

// toothSpec derives every tooth dimension from the gear's outer radius
// and tooth count. The pitch circle sits at 85% of the outer radius and
// the working depth is 70% of the circular pitch, split 2:1 between
// addendum and dedendum.
type toothSpec struct {
	maxRadius float64
	teeth     int
	topRatio  float64
}

func (t toothSpec) pitchAngle() float64 {
	return 2 * math.Pi / float64(t.teeth)
}

func (t toothSpec) pitchRadius() float64 {
	return t.maxRadius * 0.85
}

func (t toothSpec) circularPitch() float64 {
	return t.pitchRadius() * t.pitchAngle()
}

func (t toothSpec) addendum() float64 {
	return t.circularPitch() * 0.7 * 2.0 / 3.0
}

func (t toothSpec) dedendum() float64 {
	return t.circularPitch() * 0.7 / 3.0
}

func (t toothSpec) height() float64 {
	return t.addendum() + t.dedendum()
}

// chordWidth is the straight-line distance between corresponding points
// on adjacent teeth, measured on the pitch circle.
func (t toothSpec) chordWidth() float64 {
	return 2 * t.pitchRadius() * math.Sin(t.pitchAngle()/2)
}

func (t toothSpec) width() float64 {
	return t.chordWidth() / 2
}

func (t toothSpec) topWidth() float64 {
	return t.width() * t.topRatio
}

// baseRadius is the radius of the disc the teeth sit on. The outer
// circle passes through the tooth tip corners, not its center, so both
// ends of the tooth need a chord correction.
func (t toothSpec) baseRadius() float64 {
	cosHalfPitch := math.Cos(t.pitchAngle() / 2)
	topRadius := cosHalfPitch * t.maxRadius
	bottomRadius := topRadius - t.height()
	adjustment := bottomRadius - bottomRadius*cosHalfPitch
	return bottomRadius + adjustment
}

// shape builds one tooth centered on the origin, symmetric about z=0.
func (t toothSpec) shape(thickness float64) *solid.Shape {
	base := t.width()
	top := t.topWidth()
	h := t.height()
	return solid.New().
		Polyline([][2]float64{
			{-base / 2, -h / 2},
			{base / 2, -h / 2},
			{top / 2, h / 2},
			{-top / 2, h / 2},
		}).
		Extrude(thickness).
		Translate(0, 0, -thickness/2)
}

// Gear is a radius-driven cogwheel: a base disc with straight-flank
// teeth spaced evenly around it. MaxRadius is the radius at the tooth
// tips.
type Gear struct {
	MaxRadius Measure
	Teeth     int
	Thickness Measure
	Profile   Profile
}

// Shape builds the gear.
func (g Gear) Shape() (*solid.Shape, error) {
	if g.Teeth < 3 {
		return nil, fmt.Errorf("gear needs at least 3 teeth, got %d", g.Teeth)
	}
	ratio, err := g.Profile.topRatio()
	if err != nil {
		return nil, err
	}

	spec := toothSpec{maxRadius: value(g.MaxRadius), teeth: g.Teeth, topRatio: ratio}
	thickness := value(g.Thickness)
	base := spec.baseRadius()

	gear := solid.New().Circle(base).Extrude(thickness)

	// The base circle does not pass through the tooth root center, so
	// pull the teeth in by the same chord correction used for the disc.
	minAdjustment := base - base*math.Cos(spec.pitchAngle()/2)
	distance := spec.maxRadius - spec.height()/2 - minAdjustment
	for i := 0; i < g.Teeth; i++ {
		angle := float64(i) * spec.pitchAngle()
		tooth := spec.shape(thickness).
			Rotate(0, 0, -float64(i)*360/float64(g.Teeth)).
			Translate(distance*math.Sin(angle), distance*math.Cos(angle), thickness/2)
		gear.Union(tooth)
	}
	return finish(gear)
}

// SphericalGear is a sphere studded with teeth along three rings: the
// equator and 30 degrees above and below it.
type SphericalGear struct {
	Radius Measure
	Teeth  int
}

// Shape builds the spherical gear. If tooth generation fails the part
// degrades to a plain sphere and logs what happened.
func (g SphericalGear) Shape() (*solid.Shape, error) {
	if g.Teeth < 3 {
		return nil, fmt.Errorf("spherical gear needs at least 3 teeth, got %d", g.Teeth)
	}
	s, err := g.toothed()
	if err != nil {
		monitoring.Warnf("spherical gear teeth failed (%v), falling back to plain sphere", err)
		return finish(solid.New().Sphere(value(g.Radius)))
	}
	return s, nil
}

func (g SphericalGear) toothed() (*solid.Shape, error) {
	r := value(g.Radius)
	toothHeight := r * 0.1
	toothSize := r * 0.05

	s := solid.New().Sphere(r)

	// Equator first, then 30 degrees above and below it.
	rings := []float64{
		math.Pi / 2,
		math.Pi/2 - math.Pi/6,
		math.Pi/2 + math.Pi/6,
	}
	for _, theta := range rings {
		for i := 0; i < g.Teeth; i++ {
			phi := 2 * math.Pi * float64(i) / float64(g.Teeth)
			tooth := solid.New().
				Box(toothSize, toothSize, toothHeight).
				Translate(
					r*math.Sin(theta)*math.Cos(phi),
					r*math.Sin(theta)*math.Sin(phi),
					r*math.Cos(theta),
				)
			s.Union(tooth)
		}
	}
	return finish(s)
}
