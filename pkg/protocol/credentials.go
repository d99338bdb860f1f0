package protocol

import (
	"errors"
	"fmt"

	"github.com/praos-dev/praos-go/pkg/keys"
)

// CredentialPaths is a set of file paths to the credentials a block-producing
// node needs, as given by the operator. Either all three or none must be set.
type CredentialPaths struct {
	CertificatePath string
	VRFKeyPath      string
	KESKeyPath      string
}

// EnvelopeDecoder decodes credential envelope files. It is implemented by
// keys.FileDecoder for real files and by fakes in tests.
type EnvelopeDecoder interface {
	// DecodeCertificate decodes an operational certificate envelope and
	// returns the certificate with the cold verification key bundled into it.
	DecodeCertificate(path string) (*keys.OperationalCert, keys.VerificationKey, error)
	// DecodeVRFKey decodes a VRF signing key envelope.
	DecodeVRFKey(path string) (keys.VRFSigningKey, error)
	// DecodeKESKey decodes a KES signing key envelope.
	DecodeKESKey(path string) (keys.KESSigningKey, error)
}

// LeaderCredentials is the complete set of credentials a node needs to issue
// blocks. It is never partially populated, construction either yields all four
// fields or fails.
type LeaderCredentials struct {
	// OpCert is the decoded operational certificate payload.
	OpCert *keys.OperationalCert
	// ColdKey is the cold verification key from the certificate envelope,
	// re-tagged to the block-issuer role.
	ColdKey keys.VerificationKey
	// VRFKey is the signing key for leader-election randomness proofs.
	VRFKey keys.VRFSigningKey
	// KESKey is the signing key for block-issuance proofs.
	KESKey keys.KESSigningKey
}

// Errors for incomplete credential bundles. A partial bundle is almost
// certainly an operator mistake, so it is rejected instead of silently
// starting the node in non-leader mode. The first missing path in
// certificate, VRF, KES order is the one reported.
var (
	ErrCertNotSpecified   = errors.New("operational certificate not specified, use the '--opcert' flag")
	ErrVRFKeyNotSpecified = errors.New("VRF signing key not specified, use the '--vrf-key' flag")
	ErrKESKeyNotSpecified = errors.New("KES signing key not specified, use the '--kes-key' flag")
)

// FileError is returned for a credential file that fails envelope decoding.
// It carries the decoder's diagnostic verbatim.
type FileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("credential file %s: %v", e.Path, e.Err)
}

// Unwrap implements the error wrapper interface.
func (e *FileError) Unwrap() error {
	return e.Err
}

// LoadCredentials decodes the credential bundle referenced by paths using the
// given decoder. A nil or empty bundle yields (nil, nil), the node then runs
// in non-leader mode. A complete bundle yields LeaderCredentials with the
// certificate's cold key re-tagged to the block-issuer role. An incomplete
// bundle is rejected with the first missing path in priority order.
func LoadCredentials(paths *CredentialPaths, dec EnvelopeDecoder) (*LeaderCredentials, error) {
	if paths == nil {
		return nil, nil
	}
	switch {
	case paths.CertificatePath == "" && paths.VRFKeyPath == "" && paths.KESKeyPath == "":
		return nil, nil
	case paths.CertificatePath == "":
		return nil, ErrCertNotSpecified
	case paths.VRFKeyPath == "":
		return nil, ErrVRFKeyNotSpecified
	case paths.KESKeyPath == "":
		return nil, ErrKESKeyNotSpecified
	}

	opCert, coldKey, err := dec.DecodeCertificate(paths.CertificatePath)
	if err != nil {
		return nil, &FileError{Path: paths.CertificatePath, Err: err}
	}
	vrfKey, err := dec.DecodeVRFKey(paths.VRFKeyPath)
	if err != nil {
		return nil, &FileError{Path: paths.VRFKeyPath, Err: err}
	}
	kesKey, err := dec.DecodeKESKey(paths.KESKeyPath)
	if err != nil {
		return nil, &FileError{Path: paths.KESKeyPath, Err: err}
	}

	return &LeaderCredentials{
		OpCert:  opCert,
		ColdKey: coldKey.As(keys.RoleBlockIssuerVKey),
		VRFKey:  vrfKey,
		KESKey:  kesKey,
	}, nil
}
