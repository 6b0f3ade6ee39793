package motion

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"math"

	"github.com/robotalks/pursuit.go/pkg/sim"
)

// Range bounds an operator-tunable parameter.
type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

// Clamp limits v into the range. Non-finite values are rejected.
func (r Range) Clamp(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return r.Default, ErrInvalidParam
	}
	return math.Min(math.Max(v, r.Min), r.Max), nil
}

// Config defines the configuration of the simulator.
type Config struct {
	// File is an optional JSON file overriding the fields below.
	File string `json:"-"`

	TargetRadius        float64 `json:"target_radius"`
	TurnThreshold       float64 `json:"turn_threshold_deg"`
	MinForwardRatio     float64 `json:"min_forward_ratio"`
	LookaheadDistance   float64 `json:"lookahead_distance"`
	FinalPointTolerance float64 `json:"final_point_tolerance"`
	BaseSpeed           float64 `json:"base_speed"`
	TurnGain            float64 `json:"turn_gain"`
	Speed               Range   `json:"speed"`
	TurnSpeed           Range   `json:"turn_speed"`
	StartX              float64 `json:"start_x"`
	StartY              float64 `json:"start_y"`
	StartHeading        float64 `json:"start_heading_deg"`
}

// Defaults
const (
	DefaultTargetRadius        float64 = 20
	DefaultTurnThreshold       float64 = 10
	DefaultMinForwardRatio     float64 = 0.1
	DefaultLookaheadDistance   float64 = 50
	DefaultFinalPointTolerance float64 = 5
	DefaultBaseSpeed           float64 = 2
	DefaultTurnGain            float64 = 0.1
)

var defaultConfig = Config{
	TargetRadius:        DefaultTargetRadius,
	TurnThreshold:       DefaultTurnThreshold,
	MinForwardRatio:     DefaultMinForwardRatio,
	LookaheadDistance:   DefaultLookaheadDistance,
	FinalPointTolerance: DefaultFinalPointTolerance,
	BaseSpeed:           DefaultBaseSpeed,
	TurnGain:            DefaultTurnGain,
	Speed:               Range{Min: 1, Max: 5, Default: 2},
	TurnSpeed:           Range{Min: 0.01, Max: 0.1, Default: 0.05},
	StartX:              500,
	StartY:              325,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.File, "motion-config", defaultConfig.File, "JSON file overriding motion parameters.")
	flag.Float64Var(&defaultConfig.TargetRadius, "target-radius", defaultConfig.TargetRadius, "Distance at which a target is reached.")
	flag.Float64Var(&defaultConfig.TurnThreshold, "turn-threshold", defaultConfig.TurnThreshold, "Misalignment (degrees) below which no turn is applied.")
	flag.Float64Var(&defaultConfig.LookaheadDistance, "lookahead", defaultConfig.LookaheadDistance, "Lookahead distance of pure pursuit.")
	flag.Float64Var(&defaultConfig.FinalPointTolerance, "final-tolerance", defaultConfig.FinalPointTolerance, "Distance at which the final waypoint is reached.")
	flag.Float64Var(&defaultConfig.BaseSpeed, "pursuit-speed", defaultConfig.BaseSpeed, "Fixed speed of pure pursuit.")
	flag.Float64Var(&defaultConfig.Speed.Default, "speed", defaultConfig.Speed.Default, "Initial steering speed.")
	flag.Float64Var(&defaultConfig.TurnSpeed.Default, "turn-speed", defaultConfig.TurnSpeed.Default, "Initial steering turn speed (radians per tick).")
	flag.Float64Var(&defaultConfig.StartX, "start-x", defaultConfig.StartX, "Start position X.")
	flag.Float64Var(&defaultConfig.StartY, "start-y", defaultConfig.StartY, "Start position Y.")
	flag.Float64Var(&defaultConfig.StartHeading, "start-heading", defaultConfig.StartHeading, "Start heading (degrees).")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Load applies the JSON file if one is configured.
func (c *Config) Load() error {
	if c.File == "" {
		return nil
	}
	return c.LoadFile(c.File)
}

// LoadFile overrides fields present in the JSON file.
func (c *Config) LoadFile(fn string) error {
	data, err := ioutil.ReadFile(fn)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %v", fn, err)
	}
	return nil
}

// StartPose is the configured initial pose.
func (c *Config) StartPose() sim.Pose2D {
	return sim.Pose2D{
		Pos2D:       sim.Pos2D{X: c.StartX, Y: c.StartY},
		Orientation: sim.AngleFromDegrees(c.StartHeading),
	}
}

// NewSteeringController creates the SteeringController.
func (c *Config) NewSteeringController() *SteeringController {
	return &SteeringController{
		TargetRadius:    c.TargetRadius,
		TurnThreshold:   sim.AngleFromDegrees(c.TurnThreshold),
		MinForwardRatio: c.MinForwardRatio,
	}
}

// NewPurePursuitFollower creates the PurePursuitFollower.
func (c *Config) NewPurePursuitFollower() *PurePursuitFollower {
	return &PurePursuitFollower{
		LookaheadDistance: c.LookaheadDistance,
		BaseSpeed:         c.BaseSpeed,
		TurnThreshold:     sim.AngleFromDegrees(c.TurnThreshold),
		TurnGain:          c.TurnGain,
		MinTurnSpeed:      c.TurnSpeed.Min,
		MaxTurnSpeed:      c.TurnSpeed.Max,
	}
}

// NewSimulator creates the Simulator.
func (c *Config) NewSimulator() *Simulator {
	s := &Simulator{
		Steering:            c.NewSteeringController(),
		Pursuit:             c.NewPurePursuitFollower(),
		FinalPointTolerance: c.FinalPointTolerance,
		SpeedRange:          c.Speed,
		TurnSpeedRange:      c.TurnSpeed,
	}
	s.speed, _ = c.Speed.Clamp(c.Speed.Default)
	s.turnSpeed, _ = c.TurnSpeed.Clamp(c.TurnSpeed.Default)
	s.State.Pose = c.StartPose()
	return s
}
