package gen

// Config holds the settings of a single generation run.
type Config struct {
	// Module is the name of the generated module, e.g. "ExamplePortal".
	Module string
	// PortalName is the name of the generated portal value. Defaults
	// to "portal".
	PortalName string
	// Target is the output directory.
	Target string
	// Header is an optional comment added at the top of each generated
	// file, after the standard generated-code marker.
	Header string
	// Workers bounds the number of files generated in parallel.
	// Zero means one worker per backend.
	Workers int
}

// Option configures code generation.
type Option func(*Config) error

// NewConfig creates a generation config from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{PortalName: "portal"}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.Module == "" {
		return nil, NewConfigError("Module", nil, "module name cannot be empty")
	}
	if !ValidModuleName(c.Module) {
		return nil, NewConfigError("Module", c.Module, "not a valid module name")
	}
	if !validLowerIdent(c.PortalName) {
		return nil, NewConfigError("PortalName", c.PortalName, "not a valid portal value name")
	}
	return c, nil
}

// WithModule sets the generated module name.
func WithModule(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("Module", nil, "module name cannot be empty")
		}
		c.Module = name
		return nil
	}
}

// WithPortalName sets the name of the generated portal value.
func WithPortalName(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("PortalName", nil, "portal name cannot be empty")
		}
		c.PortalName = name
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithWorkers bounds the number of parallel generation workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "worker count cannot be negative")
		}
		c.Workers = n
		return nil
	}
}
