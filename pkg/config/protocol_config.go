package config

import (
	"errors"
	"fmt"

	"github.com/praos-dev/praos-go/pkg/hash"
)

// ProtocolConfiguration represents the protocol config.
type (
	ProtocolConfiguration struct {
		// GenesisPath is the path to the genesis descriptor file.
		GenesisPath string `yaml:"GenesisPath"`
		// GenesisHash is the expected Blake2b-256 hash of the genesis file.
		// When set, a genesis file with a different hash is rejected.
		GenesisHash *hash.Hash256 `yaml:"GenesisHash"`
		// ProtocolVersionMajor is the major protocol version this node runs.
		ProtocolVersionMajor uint64 `yaml:"ProtocolVersionMajor"`
		// ProtocolVersionMinor is the minor protocol version this node runs.
		ProtocolVersionMinor uint64 `yaml:"ProtocolVersionMinor"`
		// MaxProtocolVersionMajor is the highest major protocol version this
		// node is able to validate.
		MaxProtocolVersionMajor uint64 `yaml:"MaxProtocolVersionMajor"`
	}
)

// Validate checks ProtocolConfiguration for internal consistency. It returns
// an error if anything inappropriate is found.
func (p *ProtocolConfiguration) Validate() error {
	if len(p.GenesisPath) == 0 {
		return errors.New("GenesisPath is not set")
	}
	if p.ProtocolVersionMajor > p.MaxProtocolVersionMajor {
		return fmt.Errorf("ProtocolVersionMajor %d exceeds MaxProtocolVersionMajor %d",
			p.ProtocolVersionMajor, p.MaxProtocolVersionMajor)
	}
	return nil
}
