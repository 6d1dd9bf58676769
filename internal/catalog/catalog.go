// Package catalog names every object the CLI can build and maps
// parameter strings onto part constructors. Each entry carries its
// defaults, so an object builds with no parameters at all and any
// subset may be overridden.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/efficio-cad/efficio/measure"
	"github.com/efficio-cad/efficio/part"
)

// Param describes one tunable parameter of a catalog entry.
type Param struct {
	Name        string
	Default     string
	Description string
}

// Params holds resolved parameter values, defaults already applied.
type Params map[string]string

// Measure parses the named parameter as a dimension like "40mm",
// "2in" or "3/8in". Bare numbers read as millimeters.
func (p Params) Measure(name string) (measure.Measure, error) {
	m, err := measure.Parse(p[name])
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", name, err)
	}
	return m, nil
}

// Int parses the named parameter as a whole number.
func (p Params) Int(name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(p[name]))
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %q is not a whole number", name, p[name])
	}
	return n, nil
}

// Bool parses the named parameter as true or false.
func (p Params) Bool(name string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(p[name]))
	if err != nil {
		return false, fmt.Errorf("parameter %s: %q is not true or false", name, p[name])
	}
	return b, nil
}

// Profile parses the named parameter as a gear tooth profile.
func (p Params) Profile(name string) (part.Profile, error) {
	prof, err := part.ParseProfile(p[name])
	if err != nil {
		return prof, fmt.Errorf("parameter %s: %w", name, err)
	}
	return prof, nil
}

// Entry describes one buildable object.
type Entry struct {
	Name        string
	Description string
	Params      []Param
	build       func(p Params) (part.Part, error)
}

// Build resolves overrides against the entry's defaults and constructs
// the part. Unknown parameter names are rejected.
func (e Entry) Build(overrides map[string]string) (part.Part, error) {
	params := make(Params, len(e.Params))
	for _, p := range e.Params {
		params[p.Name] = p.Default
	}
	for name, value := range overrides {
		if _, ok := params[name]; !ok {
			return nil, fmt.Errorf("unknown parameter %q for object %q (valid: %s)", name, e.Name, e.paramNames())
		}
		params[name] = value
	}
	return e.build(params)
}

func (e Entry) paramNames() string {
	names := make([]string, len(e.Params))
	for i, p := range e.Params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// All returns every catalog entry in display order.
func All() []Entry {
	return entries
}

// Lookup finds an entry by name.
func Lookup(name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the catalog entry names in display order.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

var entries = []Entry{
	{
		Name:        "box",
		Description: "Rectangular solid",
		Params: []Param{
			{Name: "width", Default: "40mm", Description: "extent along x"},
			{Name: "length", Default: "40mm", Description: "extent along y"},
			{Name: "depth", Default: "40mm", Description: "extent along z"},
		},
		build: func(p Params) (part.Part, error) {
			width, err := p.Measure("width")
			if err != nil {
				return nil, err
			}
			length, err := p.Measure("length")
			if err != nil {
				return nil, err
			}
			depth, err := p.Measure("depth")
			if err != nil {
				return nil, err
			}
			return &part.Box{Width: width, Length: length, Depth: depth}, nil
		},
	},
	{
		Name:        "cylinder",
		Description: "Circular rod standing on the build plane",
		Params: []Param{
			{Name: "radius", Default: "20mm", Description: "circular radius"},
			{Name: "length", Default: "40mm", Description: "extent along z"},
		},
		build: func(p Params) (part.Part, error) {
			radius, err := p.Measure("radius")
			if err != nil {
				return nil, err
			}
			length, err := p.Measure("length")
			if err != nil {
				return nil, err
			}
			return &part.Cylinder{Radius: radius, Length: length}, nil
		},
	},
	{
		Name:        "sphere",
		Description: "Ball centered on the origin",
		Params: []Param{
			{Name: "radius", Default: "20mm", Description: "spherical radius"},
		},
		build: func(p Params) (part.Part, error) {
			radius, err := p.Measure("radius")
			if err != nil {
				return nil, err
			}
			return &part.Sphere{Radius: radius}, nil
		},
	},
	{
		Name:        "gear",
		Description: "Flat gear with teeth around a disc",
		Params: []Param{
			{Name: "max-radius", Default: "50mm", Description: "radius over the tooth tips"},
			{Name: "teeth", Default: "10", Description: "tooth count"},
			{Name: "thickness", Default: "10mm", Description: "extent along z"},
			{Name: "profile", Default: "rectangular", Description: "tooth profile: rectangular, trapezoidal or involute"},
		},
		build: func(p Params) (part.Part, error) {
			maxRadius, err := p.Measure("max-radius")
			if err != nil {
				return nil, err
			}
			teeth, err := p.Int("teeth")
			if err != nil {
				return nil, err
			}
			thickness, err := p.Measure("thickness")
			if err != nil {
				return nil, err
			}
			profile, err := p.Profile("profile")
			if err != nil {
				return nil, err
			}
			return &part.Gear{MaxRadius: maxRadius, Teeth: teeth, Thickness: thickness, Profile: profile}, nil
		},
	},
	{
		Name:        "spherical-gear",
		Description: "Ball with tooth rings on three latitudes",
		Params: []Param{
			{Name: "radius", Default: "25mm", Description: "spherical radius"},
			{Name: "teeth", Default: "11", Description: "teeth per ring"},
		},
		build: func(p Params) (part.Part, error) {
			radius, err := p.Measure("radius")
			if err != nil {
				return nil, err
			}
			teeth, err := p.Int("teeth")
			if err != nil {
				return nil, err
			}
			return &part.SphericalGear{Radius: radius, Teeth: teeth}, nil
		},
	},
	{
		Name:        "m3-bolt",
		Description: "M3 bolt with a cylindrical head",
		Params: []Param{
			{Name: "length", Default: "16mm", Description: "shaft length below the head"},
			{Name: "clearance", Default: "false", Description: "oversize for a sliding fit"},
		},
		build: func(p Params) (part.Part, error) {
			length, err := p.Measure("length")
			if err != nil {
				return nil, err
			}
			clearance, err := p.Bool("clearance")
			if err != nil {
				return nil, err
			}
			return &part.Bolt{Length: length, Clearance: clearance}, nil
		},
	},
	{
		Name:        "m3-nut",
		Description: "M3 hex nut",
		Params: []Param{
			{Name: "clearance", Default: "false", Description: "oversize for a sliding fit"},
		},
		build: func(p Params) (part.Part, error) {
			clearance, err := p.Bool("clearance")
			if err != nil {
				return nil, err
			}
			return &part.HexNut{Clearance: clearance}, nil
		},
	},
	{
		Name:        "m3-bolt-assembly",
		Description: "M3 bolt with the nut threaded flush to the end",
		Params: []Param{
			{Name: "length", Default: "16mm", Description: "shaft length below the head"},
			{Name: "clearance", Default: "true", Description: "oversize for a sliding fit"},
		},
		build: func(p Params) (part.Part, error) {
			length, err := p.Measure("length")
			if err != nil {
				return nil, err
			}
			clearance, err := p.Bool("clearance")
			if err != nil {
				return nil, err
			}
			return &part.BoltAssembly{Length: length, Clearance: clearance}, nil
		},
	},
	{
		Name:        "m3-bolt-channel",
		Description: "Negative space for dropping an M3 bolt through a wall",
		Params: []Param{
			{Name: "length", Default: "20mm", Description: "overall channel height"},
		},
		build: func(p Params) (part.Part, error) {
			length, err := p.Measure("length")
			if err != nil {
				return nil, err
			}
			return &part.BoltChannel{Length: length}, nil
		},
	},
	{
		Name:        "button",
		Description: "Push button cap with a press-fit shaft",
		Params: []Param{
			{Name: "head-height", Default: "2mm", Description: "cap height"},
			{Name: "head-diameter", Default: "10mm", Description: "cap diameter"},
			{Name: "shaft-length", Default: "5mm", Description: "shaft length below the cap"},
			{Name: "shaft-diameter", Default: "4mm", Description: "shaft diameter"},
			{Name: "clearance", Default: "false", Description: "oversize for a sliding fit"},
		},
		build: func(p Params) (part.Part, error) {
			headHeight, err := p.Measure("head-height")
			if err != nil {
				return nil, err
			}
			headDiameter, err := p.Measure("head-diameter")
			if err != nil {
				return nil, err
			}
			shaftLength, err := p.Measure("shaft-length")
			if err != nil {
				return nil, err
			}
			shaftDiameter, err := p.Measure("shaft-diameter")
			if err != nil {
				return nil, err
			}
			clearance, err := p.Bool("clearance")
			if err != nil {
				return nil, err
			}
			return &part.Button{
				HeadHeight:    headHeight,
				HeadDiameter:  headDiameter,
				ShaftLength:   shaftLength,
				ShaftDiameter: shaftDiameter,
				Clearance:     clearance,
			}, nil
		},
	},
	{
		Name:        "rounded-box",
		Description: "Hollow filleted box with a lid, printed side by side",
		Params: []Param{
			{Name: "width", Default: "40mm", Description: "outer extent along x"},
			{Name: "length", Default: "40mm", Description: "outer extent along y"},
			{Name: "depth", Default: "30mm", Description: "outer extent along z"},
		},
		build: func(p Params) (part.Part, error) {
			width, err := p.Measure("width")
			if err != nil {
				return nil, err
			}
			length, err := p.Measure("length")
			if err != nil {
				return nil, err
			}
			depth, err := p.Measure("depth")
			if err != nil {
				return nil, err
			}
			return &part.RoundedBox{Width: width, Length: length, Depth: depth}, nil
		},
	},
}
