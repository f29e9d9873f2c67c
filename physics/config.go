package physics

import "fmt"

// DecayMode selects how the speed of a body decays after bouncing off an arena element.
type DecayMode uint8

const (
	// DecayConstant multiplies the reflected speed with Config.WallDecay.
	DecayConstant DecayMode = iota

	// DecayMass multiplies the reflected speed with exp(-MassDecayRate * mass).
	DecayMass
)

// Config holds the tunables of the collision engine.
type Config struct {
	// Margin is the proximity slack used for bodies below SpeedThreshold.
	Margin float64 `yaml:"margin"`

	// Bodies faster than SpeedThreshold get time of impact prediction.
	SpeedThreshold float64 `yaml:"speed_threshold"`

	// HorizonScale stretches the prediction window beyond one frame step.
	HorizonScale float64 `yaml:"horizon_scale"`

	// ImpulseFactor scales the contact offset into a velocity correction
	// for contacts between two movable bodies.
	ImpulseFactor float64 `yaml:"impulse_factor"`

	Decay         DecayMode `yaml:"decay"`
	WallDecay     float64   `yaml:"wall_decay"`
	MassDecayRate float64   `yaml:"mass_decay_rate"`

	// PushOutFraction of the penetration vector is applied to move a body
	// out of an arena element after a bounce.
	PushOutFraction float64 `yaml:"push_out_fraction"`
}

func DefaultConfig() Config {
	return Config{
		Margin:          5,
		SpeedThreshold:  200,
		HorizonScale:    1.1,
		ImpulseFactor:   10,
		Decay:           DecayConstant,
		WallDecay:       0.40,
		MassDecayRate:   0.5,
		PushOutFraction: 0.1,
	}
}

func (d DecayMode) String() string {
	switch d {
	case DecayConstant:
		return "constant"
	case DecayMass:
		return "mass"
	default:
		return fmt.Sprintf("DecayMode(%d)", uint8(d))
	}
}

func (d DecayMode) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DecayMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "constant":
		*d = DecayConstant
	case "mass":
		*d = DecayMass
	default:
		return fmt.Errorf("unknown decay mode %q", string(text))
	}

	return nil
}
