package pursuit

import (
	"flag"

	env "github.com/robotalks/pursuit.go/pkg/l1/env/controller"
	"github.com/robotalks/pursuit.go/pkg/sim/motion"
)

// Config defines the configuration for the bot.
type Config struct {
	FieldWidth    float64
	FieldHeight   float64
	ReservedStrip float64
	TickRate      float64
	PublishEvery  uint
}

// Defaults
const (
	DefaultFieldWidth    float64 = 1000
	DefaultFieldHeight   float64 = 800
	DefaultReservedStrip float64 = 150
	DefaultTickRate      float64 = 60
	DefaultPublishEvery  uint    = 6
)

var defaultConfig = Config{
	FieldWidth:    DefaultFieldWidth,
	FieldHeight:   DefaultFieldHeight,
	ReservedStrip: DefaultReservedStrip,
	TickRate:      DefaultTickRate,
	PublishEvery:  DefaultPublishEvery,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.FieldWidth, "field-width", defaultConfig.FieldWidth, "Width of the field.")
	flag.Float64Var(&defaultConfig.FieldHeight, "field-height", defaultConfig.FieldHeight, "Height of the field.")
	flag.Float64Var(&defaultConfig.ReservedStrip, "reserved-strip", defaultConfig.ReservedStrip, "Height of the strip at the bottom where plain clicks are ignored.")
	flag.Float64Var(&defaultConfig.TickRate, "tick-rate", defaultConfig.TickRate, "Simulation ticks per second.")
	flag.UintVar(&defaultConfig.PublishEvery, "publish-every", defaultConfig.PublishEvery, "Publish state every N ticks.")
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

// ReservedY is where the reserved strip starts.
func (c *Config) ReservedY() float64 {
	return c.FieldHeight - c.ReservedStrip
}

// NewController creates the Controller.
func (c *Config) NewController(e *env.Env, mc *motion.Config) *Controller {
	ctl := NewController(e, mc.NewSimulator())
	ctl.ReservedY = c.ReservedY()
	ctl.Publisher.Every = uint64(c.PublishEvery)
	return ctl
}
