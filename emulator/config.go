package emulator

import (
	"io"

	"github.com/BurntSushi/toml"
)

// Config is the machine configuration, decodable from TOML.
type Config struct {
	MemorySize uint `toml:"memory_size"`
	Verbose    bool `toml:"verbose"`
	DumpWindow int  `toml:"dump_window"`
}

// DefaultConfig returns the default machine configuration.
func DefaultConfig() Config {
	return Config{
		MemorySize: MEMORY_SIZE,
		DumpWindow: DUMP_WINDOW,
	}
}

// LoadConfig decodes a TOML machine configuration, with defaults for
// any omitted field.
func LoadConfig(r io.Reader) (config Config, err error) {
	config = DefaultConfig()
	_, err = toml.NewDecoder(r).Decode(&config)

	return
}
