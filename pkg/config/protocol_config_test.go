package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtocolConfigurationValidation(t *testing.T) {
	p := &ProtocolConfiguration{}
	require.Error(t, p.Validate())

	p = &ProtocolConfiguration{
		GenesisPath:             "genesis.json",
		ProtocolVersionMajor:    4,
		MaxProtocolVersionMajor: 3,
	}
	require.Error(t, p.Validate())

	p = &ProtocolConfiguration{
		GenesisPath:             "genesis.json",
		ProtocolVersionMajor:    2,
		ProtocolVersionMinor:    1,
		MaxProtocolVersionMajor: 3,
	}
	require.NoError(t, p.Validate())

	p = &ProtocolConfiguration{
		GenesisPath:             "genesis.json",
		ProtocolVersionMajor:    3,
		MaxProtocolVersionMajor: 3,
	}
	require.NoError(t, p.Validate())
}
