// SPDX-License-Identifier: MIT

// Package config holds the runtime configuration of the lvmul command:
// YAML file first, then command-line flags on top.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvmul/pool"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultResponderAddr = "127.0.0.1:6379"
	DefaultReadBuffer    = 4096
)

// ErrInvalid is returned by Validate and Load for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Pool configures the worker pools used by the engine.
type Pool struct {
	QueueDepth int         `yaml:"queue_depth"`
	Shared     bool        `yaml:"shared"` // use one process-wide pool per element type
	Policy     pool.Policy `yaml:"policy"`
}

// Responder configures the toy TCP responder.
type Responder struct {
	Addr       string `yaml:"addr"`
	ReadBuffer int    `yaml:"read_buffer"`
}

// Config is the full configuration tree.
type Config struct {
	Log       Log       `yaml:"log"`
	Pool      Pool      `yaml:"pool"`
	Responder Responder `yaml:"responder"`
}

// Default returns a Config with every field set to its default.
func Default() Config {
	return Config{
		Log:  Log{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Pool: Pool{QueueDepth: pool.DefaultQueueDepth, Policy: pool.DefaultPolicy},
		Responder: Responder{
			Addr:       DefaultResponderAddr,
			ReadBuffer: DefaultReadBuffer,
		},
	}
}

// Load reads YAML from path over Default() and validates the result.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: read %s", path)
	}
	if err := Decode(bytes.NewReader(raw), &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: %s", path)
	}

	return cfg, cfg.Validate()
}

// Decode overlays YAML from r onto cfg. Unknown fields are rejected.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(ErrInvalid, "decode: %v", err)
	}

	return nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalid, "log.format %q", c.Log.Format)
	}
	if c.Pool.QueueDepth < 0 {
		return errors.Wrapf(ErrInvalid, "pool.queue_depth %d", c.Pool.QueueDepth)
	}
	if err := c.Pool.Policy.Validate(); err != nil {
		return errors.Wrapf(ErrInvalid, "pool.policy: %v", err)
	}
	if c.Responder.Addr == "" {
		return errors.Wrap(ErrInvalid, "responder.addr is empty")
	}
	if c.Responder.ReadBuffer < 1 {
		return errors.Wrapf(ErrInvalid, "responder.read_buffer %d", c.Responder.ReadBuffer)
	}

	return nil
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, errors.Wrapf(ErrInvalid, "log.level %q", s)
	}

	return l, nil
}

// NewLogger builds the slog logger described by c.Log.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
