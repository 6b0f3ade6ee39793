package see

import (
	"flag"
	"io"
	"os"
)

// Config represents configuration for see.
type Config struct {
	W           float64
	H           float64
	RobotRadius float64
	Out         io.Writer
}

var defaultConfig = Config{
	W:           1000,
	H:           800,
	RobotRadius: 10,
	Out:         os.Stdout,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.W, "see-w", defaultConfig.W, "Width of visualization area")
	flag.Float64Var(&defaultConfig.H, "see-h", defaultConfig.H, "Height of visualization area")
	flag.Float64Var(&defaultConfig.RobotRadius, "see-robot-radius", defaultConfig.RobotRadius, "Radius of the robot marker")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a default config.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewAdapter creates adapter from config.
func (c *Config) NewAdapter() *Adapter {
	return NewAdapter(c)
}
