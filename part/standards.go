package part

import "github.com/efficio-cad/efficio/measure"

// GearStandard computes the standardized radii for a tooth count. The
// returned measures carry the standard's native unit, so a standard can
// feed Gear.MaxRadius directly:
//
//	Gear{MaxRadius: part.ModuleNormal.AddendumRadius(24), Teeth: 24, ...}
type GearStandard interface {
	// PitchRadius is the radius of the circle where mating teeth meet.
	PitchRadius(teeth int) measure.Measure
	// AddendumRadius is the outer radius at the tooth tips.
	AddendumRadius(teeth int) measure.Measure
}

// MetricModule is an ISO gear module: millimeters of pitch diameter per
// tooth.
type MetricModule float64

// Standard ISO modules, plus coarseness aliases for 3D printing.
const (
	Module0_8  MetricModule = 0.8
	Module1    MetricModule = 1.0
	Module1_25 MetricModule = 1.25
	Module1_5  MetricModule = 1.5
	Module2    MetricModule = 2.0
	Module2_5  MetricModule = 2.5
	Module3    MetricModule = 3.0
	Module4    MetricModule = 4.0

	ModuleFine   = Module1
	ModuleNormal = Module1_5
	ModuleLarge  = Module2
)

// PitchRadius is m*N/2.
func (m MetricModule) PitchRadius(teeth int) measure.Measure {
	return measure.Millimeter(float64(m) * float64(teeth) / 2)
}

// AddendumRadius extends the pitch radius by one module.
func (m MetricModule) AddendumRadius(teeth int) measure.Measure {
	return measure.Millimeter(float64(m)*float64(teeth)/2 + float64(m))
}

// DiametralPitch is the AGMA imperial standard: teeth per inch of pitch
// diameter.
type DiametralPitch float64

// Standard diametral pitches, plus coarseness aliases for 3D printing.
const (
	Pitch24 DiametralPitch = 24
	Pitch20 DiametralPitch = 20
	Pitch16 DiametralPitch = 16
	Pitch14 DiametralPitch = 14
	Pitch12 DiametralPitch = 12
	Pitch10 DiametralPitch = 10

	PitchFine   = Pitch20
	PitchNormal = Pitch16
	PitchLarge  = Pitch12
)

// PitchRadius is N/(2*DP).
func (p DiametralPitch) PitchRadius(teeth int) measure.Measure {
	return measure.Inch(float64(teeth) / (2 * float64(p)))
}

// AddendumRadius extends the pitch radius by 1/DP.
func (p DiametralPitch) AddendumRadius(teeth int) measure.Measure {
	return measure.Inch(float64(teeth)/(2*float64(p)) + 1/float64(p))
}

// PressureAngle is the angle between the line of action and the tangent
// to the pitch circle, in degrees.
type PressureAngle float64

const (
	PressureAngleModern     PressureAngle = 20
	PressureAngleOld        PressureAngle = 14.5
	PressureAngleHighTorque PressureAngle = 25
)
