package vehicle

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every constructor constant of the vehicle model: chassis
// geometry and mass, wheel geometry, suspension, tire grip, and drivetrain
// strengths. Distances are meters, masses kilograms, angles radians, torques
// newton-meters. Loadable from a YAML preset; zero or negative fields fall
// back to their defaults.
type Tuning struct {
	ChassisMass   float32 `yaml:"chassis_mass"`
	ChassisLength float32 `yaml:"chassis_length"`
	ChassisWidth  float32 `yaml:"chassis_width"`
	ChassisHeight float32 `yaml:"chassis_height"`

	WheelBase    float32 `yaml:"wheel_base"`
	WheelTrack   float32 `yaml:"wheel_track"`
	WheelRadius  float32 `yaml:"wheel_radius"`
	WheelWidth   float32 `yaml:"wheel_width"`
	WheelInertia float32 `yaml:"wheel_inertia"` // about the spin axis

	SuspensionRest float32 `yaml:"suspension_rest"` // rest length below the attachment point
	SpringK        float32 `yaml:"spring_k"`
	DamperC        float32 `yaml:"damper_c"`

	Grip        float32 `yaml:"grip"` // tire friction coefficient
	RollingDrag float32 `yaml:"rolling_drag"`

	EngineTorque float32 `yaml:"engine_torque"`
	BrakeTorque  float32 `yaml:"brake_torque"`

	MaxSteerAngle float32 `yaml:"max_steer_angle"`
	SteerSpeed    float32 `yaml:"steer_speed"` // radians per second toward the target angle

	Gravity float32 `yaml:"gravity"` // positive magnitude, applied along -Y
}

// DefaultTuning returns a mid-size car: stiff springs so the static
// compression stays inside the suspension slop, near-critical damping.
func DefaultTuning() Tuning {
	return Tuning{
		ChassisMass:   1200,
		ChassisLength: 4.2,
		ChassisWidth:  1.8,
		ChassisHeight: 0.6,

		WheelBase:    2.6,
		WheelTrack:   1.5,
		WheelRadius:  0.35,
		WheelWidth:   0.22,
		WheelInertia: 1.5,

		SuspensionRest: 0.35,
		SpringK:        400000,
		DamperC:        12000,

		Grip:        1.1,
		RollingDrag: 0.4,

		EngineTorque: 900,
		BrakeTorque:  1400,

		MaxSteerAngle: 0.55,
		SteerSpeed:    2.5,

		Gravity: 9.81,
	}
}

// LoadTuning reads a tuning preset from a YAML file. A missing or invalid
// file yields DefaultTuning; fields the preset leaves at zero (or negative)
// are filled from the defaults so a preset may override only what it cares
// about.
func LoadTuning(path string) Tuning {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	var loaded Tuning
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return t
	}
	loaded.fillDefaults(t)
	return loaded
}

func (t *Tuning) fillDefaults(def Tuning) {
	fill := func(v *float32, d float32) {
		if *v <= 0 {
			*v = d
		}
	}
	fill(&t.ChassisMass, def.ChassisMass)
	fill(&t.ChassisLength, def.ChassisLength)
	fill(&t.ChassisWidth, def.ChassisWidth)
	fill(&t.ChassisHeight, def.ChassisHeight)
	fill(&t.WheelBase, def.WheelBase)
	fill(&t.WheelTrack, def.WheelTrack)
	fill(&t.WheelRadius, def.WheelRadius)
	fill(&t.WheelWidth, def.WheelWidth)
	fill(&t.WheelInertia, def.WheelInertia)
	fill(&t.SuspensionRest, def.SuspensionRest)
	fill(&t.SpringK, def.SpringK)
	fill(&t.DamperC, def.DamperC)
	fill(&t.Grip, def.Grip)
	fill(&t.RollingDrag, def.RollingDrag)
	fill(&t.EngineTorque, def.EngineTorque)
	fill(&t.BrakeTorque, def.BrakeTorque)
	fill(&t.MaxSteerAngle, def.MaxSteerAngle)
	fill(&t.SteerSpeed, def.SteerSpeed)
	fill(&t.Gravity, def.Gravity)
}
