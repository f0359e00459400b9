package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"urlencoder/encoding"

	"gitlab.com/efronlicht/enve"
	yaml "gopkg.in/yaml.v3"
)

// Codec modes.
const (
	ModeQuery     = "query"
	ModeComponent = "component"
)

// Main is the top level configuration.
type Main struct {
	LogLevel string `yaml:"loglevel"`

	// RejectLog is the path of a JSON lines file recording every rejected decode. Empty means only the process log is used.
	RejectLog string `yaml:"rejectLog"`

	Codec Codec      `yaml:"codec"`
	GRPC  Listener   `yaml:"grpc"`
	HTTP  HTTPServer `yaml:"http"`
}

// Codec selects and tunes the codec the servers use.
// Mode picks the base character table. The remaining fields, when set, are added on top of it.
type Codec struct {
	Mode        string `yaml:"mode"`
	Allow       string `yaml:"allow"`
	SpaceToPlus bool   `yaml:"spaceToPlus"`
	PlusToSpace bool   `yaml:"plusToSpace"`
	EscapeTilde bool   `yaml:"escapeTilde"`
}

// Listener is where a server accepts connections. MaxConnections of zero means no limit.
type Listener struct {
	Network        string `yaml:"network"`
	Address        string `yaml:"address"`
	MaxConnections int    `yaml:"maxConnections"`
}

// HTTPServer is the configuration of the HTTP API.
type HTTPServer struct {
	Listener     `yaml:",inline"`
	Enabled      bool          `yaml:"enabled"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// Default returns the configuration used when no config file is given.
func Default() Main {
	return Main{
		LogLevel: "error",
		Codec:    Codec{Mode: ModeQuery},
		GRPC:     Listener{Network: "tcp", Address: ":37291"},
		HTTP: HTTPServer{
			Listener:     Listener{Network: "tcp", Address: ":8080"},
			Enabled:      true,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
	}
}

// Load reads a YAML config file. Fields missing from the file keep their Default values.
func Load(path string) (Main, error) {
	f, err := os.Open(path)
	if err != nil {
		return Main{}, err
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return Main{}, fmt.Errorf("error while parsing config file %v: %v", path, err)
	}
	return c, nil
}

// Parse reads a YAML config from r on top of the Default values.
func Parse(r io.Reader) (Main, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return Main{}, err
	}

	if _, err := c.Codec.Codec(); err != nil {
		return Main{}, err
	}

	return c, nil
}

// ApplyEnv overrides the HTTP port and timeouts from the PORT, READ_TIMEOUT and WRITE_TIMEOUT environment variables.
func (c *Main) ApplyEnv() {
	if port := enve.IntOr("PORT", 0); port != 0 {
		c.HTTP.Address = fmt.Sprintf(":%04d", port)
	}
	c.HTTP.ReadTimeout = enve.DurationOr("READ_TIMEOUT", c.HTTP.ReadTimeout)
	c.HTTP.WriteTimeout = enve.DurationOr("WRITE_TIMEOUT", c.HTTP.WriteTimeout)
}

// Codec builds the configured codec.
func (c Codec) Codec() (*encoding.Codec, error) {
	var opts encoding.Options
	switch c.Mode {
	case ModeQuery, "":
		opts = encoding.Query.Options()
	case ModeComponent:
		opts = encoding.Component.Options()
	default:
		return nil, fmt.Errorf("unknown codec mode %q, expected %q or %q", c.Mode, ModeQuery, ModeComponent)
	}

	opts.Allow += c.Allow
	opts.SpaceToPlus = opts.SpaceToPlus || c.SpaceToPlus
	opts.PlusToSpace = opts.PlusToSpace || c.PlusToSpace
	opts.EscapeTilde = opts.EscapeTilde || c.EscapeTilde

	return encoding.NewCodec(opts), nil
}
