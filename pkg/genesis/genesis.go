package genesis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/praos-dev/praos-go/pkg/hash"
)

// Genesis is the founding configuration of a network, read once at node
// startup. Fields this core does not interpret are kept as raw JSON for the
// consensus engine to pick apart.
type Genesis struct {
	SystemStart       time.Time       `json:"systemStart"`
	NetworkMagic      uint32          `json:"networkMagic"`
	NetworkID         string          `json:"networkId"`
	ActiveSlotsCoeff  float64         `json:"activeSlotsCoeff"`
	SecurityParam     uint64          `json:"securityParam"`
	EpochLength       uint64          `json:"epochLength"`
	SlotLength        float64         `json:"slotLength"`
	SlotsPerKESPeriod uint64          `json:"slotsPerKESPeriod"`
	MaxKESEvolutions  uint64          `json:"maxKESEvolutions"`
	UpdateQuorum      uint64          `json:"updateQuorum"`
	MaxSupply         uint64          `json:"maxLovelaceSupply"`
	ProtocolParams    json.RawMessage `json:"protocolParams,omitempty"`
	GenDelegs         json.RawMessage `json:"genDelegs,omitempty"`
	InitialFunds      json.RawMessage `json:"initialFunds,omitempty"`
	Staking           json.RawMessage `json:"staking,omitempty"`

	// Hash is the Blake2b-256 digest of the raw genesis file bytes. It is
	// computed on load and not part of the file itself.
	Hash hash.Hash256 `json:"-"`
}

// ReadError is returned for a genesis file that is missing, unreadable or
// fails to decode. It carries the path the loader was given.
type ReadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("genesis file %s: %v", e.Path, e.Err)
}

// Unwrap implements the error wrapper interface.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// LoadFromFile reads and decodes a genesis descriptor from the given file.
// The decode is strict, unknown fields are rejected. Any failure is returned
// as a *ReadError carrying the path.
func LoadFromFile(path string) (*Genesis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	g := new(Genesis)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(g); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	g.Hash = hash.Blake2b256(data)
	return g, nil
}
