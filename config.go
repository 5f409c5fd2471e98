package phisave

import "github.com/stewi1014/phisave/encode"

// DefaultSource is the Source used when Config.Source is nil.
var DefaultSource = encode.DefaultSource

// Config defines configuration for Codecs.
type Config struct {
	// Source creates the Encodables for record types.
	// If nil, DefaultSource is used.
	Source encode.Source
}

func (c *Config) copyAndFill() *Config {
	config := new(Config)
	if c != nil {
		*config = *c
	}

	if config.Source == nil {
		config.Source = DefaultSource
	}

	return config
}
