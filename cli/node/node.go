package node

import (
	"fmt"

	"github.com/praos-dev/praos-go/cli/options"
	"github.com/praos-dev/praos-go/pkg/keys"
	"github.com/praos-dev/praos-go/pkg/protocol"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// NewCommands returns the 'node' command.
func NewCommands() []cli.Command {
	flags := []cli.Flag{
		options.ConfigFile,
		options.Debug,
	}
	flags = append(flags, options.Credentials...)
	return []cli.Command{{
		Name:   "node",
		Usage:  "validate the node configuration and assemble the protocol parameter set",
		Action: bootstrapNode,
		Flags:  flags,
	}}
}

func bootstrapNode(ctx *cli.Context) error {
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log, err := options.HandleLoggingParams(ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer log.Sync()

	paths := options.GetCredentialPaths(ctx, cfg.ApplicationConfiguration)
	pc, err := protocol.Assemble(cfg.ProtocolConfiguration, paths, keys.FileDecoder{})
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to assemble protocol configuration: %w", err), 1)
	}

	logAssembled(log, pc)
	return nil
}

func logAssembled(log *zap.Logger, pc *protocol.Config) {
	log.Info("protocol configuration assembled",
		zap.String("network", pc.Genesis.NetworkID),
		zap.Uint32("magic", pc.Genesis.NetworkMagic),
		zap.Stringer("genesisHash", pc.Genesis.Hash),
		zap.Stringer("initialNonce", pc.InitialNonce),
		zap.Uint64("protocolVersionMajor", pc.Version.Major),
		zap.Uint64("protocolVersionMinor", pc.Version.Minor),
		zap.Uint64("maxProtocolVersionMajor", pc.Version.MaxMajor))

	if pc.Credentials == nil {
		log.Info("no leader credentials given, running in non-leader mode")
		return
	}
	log.Info("leader credentials loaded",
		zap.Uint64("opCertIssueNumber", pc.Credentials.OpCert.IssueNumber),
		zap.Uint64("opCertKESPeriod", pc.Credentials.OpCert.KESPeriod))
}
