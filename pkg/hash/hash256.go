package hash

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Hash256Size is the size of Hash256 in bytes.
const Hash256Size = 32

// Hash256 is a 32 byte hash value, rendered as big-endian hex.
type Hash256 [Hash256Size]uint8

// Hash256DecodeString attempts to decode the given hex string into a Hash256.
func Hash256DecodeString(s string) (h Hash256, err error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != Hash256Size*2 {
		return h, fmt.Errorf("expected string size of %d got %d", Hash256Size*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	return Hash256DecodeBytes(b)
}

// Hash256DecodeBytes attempts to decode the given bytes into a Hash256.
func Hash256DecodeBytes(b []byte) (h Hash256, err error) {
	if len(b) != Hash256Size {
		return h, fmt.Errorf("expected []byte of size %d got %d", Hash256Size, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// Blake2b256 returns the Blake2b-256 digest of b.
func Blake2b256(b []byte) Hash256 {
	return Hash256(blake2b.Sum256(b))
}

// Bytes returns a byte slice representation of h.
func (h Hash256) Bytes() []byte {
	b := make([]byte, Hash256Size)
	copy(b, h[:])
	return b
}

// Equals returns true if both Hash256 values are the same.
func (h Hash256) Equals(other Hash256) bool {
	return h == other
}

// String implements the stringer interface.
func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

// UnmarshalJSON implements the json unmarshaller interface.
func (h *Hash256) UnmarshalJSON(data []byte) (err error) {
	var js string
	if err = json.Unmarshal(data, &js); err != nil {
		return err
	}
	*h, err = Hash256DecodeString(js)
	return err
}

// MarshalJSON implements the json marshaller interface.
func (h Hash256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalYAML implements the yaml unmarshaller interface.
func (h *Hash256) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	var err error
	*h, err = Hash256DecodeString(s)
	return err
}

// MarshalYAML implements the yaml marshaller interface.
func (h Hash256) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}
