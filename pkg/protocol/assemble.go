package protocol

import (
	"fmt"

	"github.com/praos-dev/praos-go/pkg/config"
	"github.com/praos-dev/praos-go/pkg/genesis"
	"github.com/praos-dev/praos-go/pkg/hash"
)

// InitialNonce is the initial leader-election nonce. It is a network-wide
// constant selectable only at network-genesis time, changing it on a network
// with an existing chain partitions the network.
//
// TODO: derive the initial nonce from the genesis file hash instead of
// keeping a hard-coded constant.
var InitialNonce = hash.Hash256{
	0xb8, 0x32, 0x7c, 0xf7, 0x77, 0xc2, 0x6d, 0x6d,
	0x88, 0x9f, 0xee, 0x21, 0x68, 0x45, 0xa3, 0x74,
	0x3a, 0x6a, 0x4a, 0x97, 0x55, 0x30, 0xa0, 0x15,
	0x07, 0x43, 0x00, 0x6a, 0xf6, 0x26, 0x97, 0x89,
}

// Version is the set of protocol version bounds the node declares.
type Version struct {
	Major uint64
	Minor uint64
	// MaxMajor is the highest major version the node is able to validate.
	MaxMajor uint64
}

// Config is the assembled protocol configuration handed to the consensus
// engine. Its construction is where this package's job ends.
type Config struct {
	Genesis      *genesis.Genesis
	InitialNonce hash.Hash256
	Version      Version
	// Credentials is nil for a non-leader node.
	Credentials *LeaderCredentials
}

// Assemble loads the genesis descriptor and the optional credential bundle
// and combines them into a Config. The genesis is loaded first and any
// failure is terminal, credential files are not touched after a genesis
// error. Nothing is retried.
func Assemble(cfg config.ProtocolConfiguration, paths *CredentialPaths, dec EnvelopeDecoder) (*Config, error) {
	g, err := genesis.LoadFromFile(cfg.GenesisPath)
	if err != nil {
		return nil, err
	}
	if cfg.GenesisHash != nil && !cfg.GenesisHash.Equals(g.Hash) {
		return nil, &genesis.ReadError{
			Path: cfg.GenesisPath,
			Err:  fmt.Errorf("hash mismatch: expected %s, got %s", cfg.GenesisHash, g.Hash),
		}
	}

	creds, err := LoadCredentials(paths, dec)
	if err != nil {
		return nil, err
	}

	return &Config{
		Genesis:      g,
		InitialNonce: InitialNonce,
		Version: Version{
			Major:    cfg.ProtocolVersionMajor,
			Minor:    cfg.ProtocolVersionMinor,
			MaxMajor: cfg.MaxProtocolVersionMajor,
		},
		Credentials: creds,
	}, nil
}
