package keys

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Role is the declared role tag of an envelope payload. The tag is part of the
// on-disk format, an envelope only decodes as the role it was written with.
type Role string

// Valid Role constants.
const (
	RoleOperationalCert Role = "NodeOperationalCertificate"
	RoleStakePoolVKey   Role = "StakePoolVerificationKey_ed25519"
	RoleBlockIssuerVKey Role = "BlockIssuerVerificationKey_ed25519"
	RoleVRFSigningKey   Role = "VrfSigningKey_PraosVRF"
	RoleKESSigningKey   Role = "KesSigningKey_ed25519_kes_2^6"
)

// Envelope is the generic on-disk wrapper for key material and certificates, a
// JSON document carrying a role tag, a free-form description and a hex-encoded
// CBOR payload.
type Envelope struct {
	Type        Role   `json:"type"`
	Description string `json:"description"`
	CBORHex     string `json:"cborHex"`
}

// ReadEnvelopeFile reads and decodes an envelope from the given file checking
// that its role tag matches the expected one. A role mismatch is a decode
// failure, not a fallback.
func ReadEnvelopeFile(path string, expected Role) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	env := new(Envelope)
	if err := json.Unmarshal(data, env); err != nil {
		return nil, fmt.Errorf("invalid envelope: %w", err)
	}
	if env.Type != expected {
		return nil, fmt.Errorf("unexpected envelope type %q, expected %q", env.Type, expected)
	}
	return env, nil
}

// Payload returns the decoded CBOR payload bytes of the envelope.
func (e *Envelope) Payload() ([]byte, error) {
	b, err := hex.DecodeString(e.CBORHex)
	if err != nil {
		return nil, fmt.Errorf("invalid envelope payload: %w", err)
	}
	return b, nil
}

// WriteFile encodes the envelope into the given file.
func (e *Envelope) WriteFile(path string) error {
	data, err := json.MarshalIndent(e, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// VerificationKey is a public key annotated with its role tag. The key bytes
// are opaque to this package.
type VerificationKey struct {
	Role  Role
	Bytes []byte
}

// As returns a copy of the key declared under the given role. It is a pure
// relabeling, the key bytes are shared verbatim.
func (k VerificationKey) As(role Role) VerificationKey {
	return VerificationKey{Role: role, Bytes: k.Bytes}
}

// VRFSigningKey is an opaque signing key for leader-election randomness proofs.
type VRFSigningKey []byte

// KESSigningKey is an opaque time-bounded block-signing key.
type KESSigningKey []byte

// OperationalCert is the decoded payload of an operational certificate
// envelope. It authorizes a node to issue blocks for a period.
type OperationalCert struct {
	HotVKey     []byte
	IssueNumber uint64
	KESPeriod   uint64
	Sigma       []byte
}

type opCertBody struct {
	_           struct{} `cbor:",toarray"`
	HotVKey     []byte
	IssueNumber uint64
	KESPeriod   uint64
	Sigma       []byte
}

type opCertWire struct {
	_        struct{} `cbor:",toarray"`
	Cert     opCertBody
	ColdVKey []byte
}

// DecodeOperationalCert decodes an operational certificate envelope into the
// certificate payload and the cold verification key bundled with it. The
// returned key carries the stake-pool role it was issued under.
func DecodeOperationalCert(e *Envelope) (*OperationalCert, VerificationKey, error) {
	payload, err := e.Payload()
	if err != nil {
		return nil, VerificationKey{}, err
	}
	var wire opCertWire
	if err := cbor.Unmarshal(payload, &wire); err != nil {
		return nil, VerificationKey{}, fmt.Errorf("invalid operational certificate: %w", err)
	}
	cert := &OperationalCert{
		HotVKey:     wire.Cert.HotVKey,
		IssueNumber: wire.Cert.IssueNumber,
		KESPeriod:   wire.Cert.KESPeriod,
		Sigma:       wire.Cert.Sigma,
	}
	return cert, VerificationKey{Role: RoleStakePoolVKey, Bytes: wire.ColdVKey}, nil
}

// EncodeOperationalCert wraps the certificate and its cold verification key
// into an envelope.
func EncodeOperationalCert(cert *OperationalCert, coldKey VerificationKey) (*Envelope, error) {
	wire := opCertWire{
		Cert: opCertBody{
			HotVKey:     cert.HotVKey,
			IssueNumber: cert.IssueNumber,
			KESPeriod:   cert.KESPeriod,
			Sigma:       cert.Sigma,
		},
		ColdVKey: coldKey.Bytes,
	}
	payload, err := cbor.Marshal(wire)
	if err != nil {
		return nil, err
	}
	return &Envelope{
		Type:        RoleOperationalCert,
		Description: "Node operational certificate",
		CBORHex:     hex.EncodeToString(payload),
	}, nil
}

// DecodeSigningKey decodes a signing-key envelope payload, a single CBOR byte
// string of opaque key material.
func DecodeSigningKey(e *Envelope) ([]byte, error) {
	payload, err := e.Payload()
	if err != nil {
		return nil, err
	}
	var key []byte
	if err := cbor.Unmarshal(payload, &key); err != nil {
		return nil, fmt.Errorf("invalid signing key: %w", err)
	}
	return key, nil
}

// EncodeSigningKey wraps opaque signing-key material into an envelope with the
// given role tag.
func EncodeSigningKey(role Role, description string, key []byte) (*Envelope, error) {
	payload, err := cbor.Marshal(key)
	if err != nil {
		return nil, err
	}
	return &Envelope{
		Type:        role,
		Description: description,
		CBORHex:     hex.EncodeToString(payload),
	}, nil
}
