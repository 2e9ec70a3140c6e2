package config

import "flag"

// overrides are the command-line settings layered over the config file.
// Zero values, and -1 for actors, mean the flag was not given.
type overrides struct {
	path       string
	debug      bool
	windowed   bool
	fullscreen bool
	width      int
	height     int
	actors     int
}

var cli = bindFlags(flag.CommandLine)

func bindFlags(fs *flag.FlagSet) *overrides {
	o := &overrides{}
	fs.StringVar(&o.path, "config", "", "Path to config file")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&o.windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&o.fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&o.width, "width", 0, "Window width")
	fs.IntVar(&o.height, "height", 0, "Window height")
	fs.IntVar(&o.actors, "actors", -1, "Number of helicopters")
	return o
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return cli.path
}

func (o *overrides) apply(cfg *Config) {
	if o.debug {
		cfg.Logging.Level = "debug"
	}
	// -fullscreen wins if both are given.
	if o.windowed {
		cfg.Graphics.Fullscreen = false
	}
	if o.fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if o.width > 0 {
		cfg.Graphics.Width = o.width
	}
	if o.height > 0 {
		cfg.Graphics.Height = o.height
	}
	if o.actors >= 0 {
		cfg.Scene.ActorCount = o.actors
	}
}
