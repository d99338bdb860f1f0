/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"errors"
	"fmt"

	"github.com/praos-dev/praos-go/pkg/config"
	"github.com/praos-dev/praos-go/pkg/protocol"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConfigFile is a flag for commands that use node configuration and provide
// path to the specific config file.
var ConfigFile = cli.StringFlag{
	Name:  "config-file, c",
	Usage: "path to the node configuration file",
}

// Debug is a flag for commands that allow debug mode usage.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (LOTS of output, overrides configuration)",
}

// Credentials is a set of flags for the leader credential bundle. Either all
// three or none of them must be given, they override the Leader section of
// the configuration file.
var Credentials = []cli.Flag{
	cli.StringFlag{
		Name:  "opcert",
		Usage: "path to the operational certificate envelope file",
	},
	cli.StringFlag{
		Name:  "vrf-key",
		Usage: "path to the VRF signing key envelope file",
	},
	cli.StringFlag{
		Name:  "kes-key",
		Usage: "path to the KES signing key envelope file",
	},
}

var errNoConfigFile = errors.New("no configuration file specified, use the '--config-file' or '-c' flag")

// GetConfigFromContext looks at the config-file flag in the given context and
// loads the node configuration it points at.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	configFile := ctx.String("config-file")
	if len(configFile) == 0 {
		return config.Config{}, errNoConfigFile
	}
	return config.LoadFile(configFile)
}

// GetCredentialPaths combines the credential flags in the given context with
// the Leader section of the configuration, flags taking precedence. It
// returns nil when neither source names any credential file.
func GetCredentialPaths(ctx *cli.Context, cfg config.ApplicationConfiguration) *protocol.CredentialPaths {
	paths := new(protocol.CredentialPaths)
	if cfg.Leader != nil {
		paths.CertificatePath = cfg.Leader.CertificatePath
		paths.VRFKeyPath = cfg.Leader.VRFKeyPath
		paths.KESKeyPath = cfg.Leader.KESKeyPath
	}
	if v := ctx.String("opcert"); v != "" {
		paths.CertificatePath = v
	}
	if v := ctx.String("vrf-key"); v != "" {
		paths.VRFKeyPath = v
	}
	if v := ctx.String("kes-key"); v != "" {
		paths.KESKeyPath = v
	}
	if *paths == (protocol.CredentialPaths{}) {
		return nil
	}
	return paths
}

// HandleLoggingParams reads logging parameters. If a user selected debug
// level, the function enables it.
func HandleLoggingParams(debug bool, cfg config.ApplicationConfiguration) (*zap.Logger, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil
	if len(cfg.LogPath) > 0 {
		cc.OutputPaths = []string{cfg.LogPath}
	}

	return cc.Build()
}
