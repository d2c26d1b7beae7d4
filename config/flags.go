// SPDX-License-Identifier: MIT

package config

import "github.com/spf13/pflag"

// Flag names.
const (
	FlagConfig        = "config"
	FlagLogLevel      = "log-level"
	FlagLogFormat     = "log-format"
	FlagQueueDepth    = "queue-depth"
	FlagSharedPool    = "shared-pool"
	FlagResponderAddr = "addr"
	FlagReadBuffer    = "read-buffer"
)

// Bind registers flags for every overridable field, defaulting to the
// current values of c. Only flags the user actually sets override a loaded
// file; see Resolve.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "path to a YAML configuration file")
	fs.StringVar(&c.Log.Level, FlagLogLevel, c.Log.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&c.Log.Format, FlagLogFormat, c.Log.Format, "log format (text, json)")
	fs.IntVar(&c.Pool.QueueDepth, FlagQueueDepth, c.Pool.QueueDepth, "buffer of each worker intake queue")
	fs.BoolVar(&c.Pool.Shared, FlagSharedPool, c.Pool.Shared, "reuse one process-wide worker pool")
	fs.StringVar(&c.Responder.Addr, FlagResponderAddr, c.Responder.Addr, "responder listen address")
	fs.IntVar(&c.Responder.ReadBuffer, FlagReadBuffer, c.Responder.ReadBuffer, "responder read chunk size in bytes")
}

// Resolve loads the file named by --config (if any) and then re-applies the
// flags the user set explicitly, so flags win over the file.
func Resolve(fs *pflag.FlagSet, flagged Config) (Config, error) {
	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return flagged, err
	}
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case FlagLogLevel:
			cfg.Log.Level = flagged.Log.Level
		case FlagLogFormat:
			cfg.Log.Format = flagged.Log.Format
		case FlagQueueDepth:
			cfg.Pool.QueueDepth = flagged.Pool.QueueDepth
		case FlagSharedPool:
			cfg.Pool.Shared = flagged.Pool.Shared
		case FlagResponderAddr:
			cfg.Responder.Addr = flagged.Responder.Addr
		case FlagReadBuffer:
			cfg.Responder.ReadBuffer = flagged.Responder.ReadBuffer
		}
	})

	return cfg, cfg.Validate()
}
