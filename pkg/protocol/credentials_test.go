package protocol

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/praos-dev/praos-go/pkg/keys"
	"github.com/stretchr/testify/require"
)

// fakeDecoder returns canned values and records which paths were decoded.
type fakeDecoder struct {
	cert    *keys.OperationalCert
	coldKey keys.VerificationKey
	vrfKey  keys.VRFSigningKey
	kesKey  keys.KESSigningKey

	certErr error
	vrfErr  error
	kesErr  error

	decoded []string
}

func (d *fakeDecoder) DecodeCertificate(path string) (*keys.OperationalCert, keys.VerificationKey, error) {
	d.decoded = append(d.decoded, path)
	return d.cert, d.coldKey, d.certErr
}

func (d *fakeDecoder) DecodeVRFKey(path string) (keys.VRFSigningKey, error) {
	d.decoded = append(d.decoded, path)
	return d.vrfKey, d.vrfErr
}

func (d *fakeDecoder) DecodeKESKey(path string) (keys.KESSigningKey, error) {
	d.decoded = append(d.decoded, path)
	return d.kesKey, d.kesErr
}

func completeFakeDecoder() *fakeDecoder {
	return &fakeDecoder{
		cert: &keys.OperationalCert{
			HotVKey:     []byte{0x01, 0x02},
			IssueNumber: 3,
			KESPeriod:   120,
			Sigma:       []byte{0x0a, 0x0b},
		},
		coldKey: keys.VerificationKey{Role: keys.RoleStakePoolVKey, Bytes: []byte{0x11, 0x22}},
		vrfKey:  keys.VRFSigningKey([]byte{0x33}),
		kesKey:  keys.KESSigningKey([]byte{0x44}),
	}
}

func TestLoadCredentialsNoBundle(t *testing.T) {
	dec := completeFakeDecoder()

	creds, err := LoadCredentials(nil, dec)
	require.NoError(t, err)
	require.Nil(t, creds)

	creds, err = LoadCredentials(&CredentialPaths{}, dec)
	require.NoError(t, err)
	require.Nil(t, creds)

	require.Empty(t, dec.decoded)
}

func TestLoadCredentialsPartialBundle(t *testing.T) {
	testCases := []struct {
		name  string
		paths CredentialPaths
		err   error
	}{
		{"only cert", CredentialPaths{CertificatePath: "c"}, ErrVRFKeyNotSpecified},
		{"only vrf", CredentialPaths{VRFKeyPath: "v"}, ErrCertNotSpecified},
		{"only kes", CredentialPaths{KESKeyPath: "k"}, ErrCertNotSpecified},
		{"cert and vrf", CredentialPaths{CertificatePath: "c", VRFKeyPath: "v"}, ErrKESKeyNotSpecified},
		{"cert and kes", CredentialPaths{CertificatePath: "c", KESKeyPath: "k"}, ErrVRFKeyNotSpecified},
		{"vrf and kes", CredentialPaths{VRFKeyPath: "v", KESKeyPath: "k"}, ErrCertNotSpecified},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dec := completeFakeDecoder()
			creds, err := LoadCredentials(&tc.paths, dec)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, creds)
			// No file is touched before the bundle is complete.
			require.Empty(t, dec.decoded)
		})
	}
}

func TestLoadCredentialsComplete(t *testing.T) {
	dec := completeFakeDecoder()
	paths := &CredentialPaths{
		CertificatePath: "node.cert",
		VRFKeyPath:      "vrf.skey",
		KESKeyPath:      "kes.skey",
	}

	creds, err := LoadCredentials(paths, dec)
	require.NoError(t, err)
	require.NotNil(t, creds)
	require.Equal(t, []string{"node.cert", "vrf.skey", "kes.skey"}, dec.decoded)

	require.Equal(t, dec.cert, creds.OpCert)
	require.Equal(t, dec.vrfKey, creds.VRFKey)
	require.Equal(t, dec.kesKey, creds.KESKey)
	// Only the cold key's role tag changes, the bytes are verbatim.
	require.Equal(t, keys.RoleBlockIssuerVKey, creds.ColdKey.Role)
	require.Equal(t, dec.coldKey.Bytes, creds.ColdKey.Bytes)
}

func TestLoadCredentialsDecodeFailure(t *testing.T) {
	paths := &CredentialPaths{
		CertificatePath: "node.cert",
		VRFKeyPath:      "vrf.skey",
		KESKeyPath:      "kes.skey",
	}

	t.Run("cert", func(t *testing.T) {
		dec := completeFakeDecoder()
		dec.certErr = errors.New("bad envelope")
		_, err := LoadCredentials(paths, dec)
		requireFileError(t, err, "node.cert", dec.certErr)
		require.Equal(t, []string{"node.cert"}, dec.decoded)
	})
	t.Run("vrf", func(t *testing.T) {
		dec := completeFakeDecoder()
		dec.vrfErr = errors.New("bad envelope")
		_, err := LoadCredentials(paths, dec)
		requireFileError(t, err, "vrf.skey", dec.vrfErr)
		require.Equal(t, []string{"node.cert", "vrf.skey"}, dec.decoded)
	})
	t.Run("kes", func(t *testing.T) {
		dec := completeFakeDecoder()
		dec.kesErr = errors.New("bad envelope")
		_, err := LoadCredentials(paths, dec)
		requireFileError(t, err, "kes.skey", dec.kesErr)
		require.Equal(t, []string{"node.cert", "vrf.skey", "kes.skey"}, dec.decoded)
	})
}

func requireFileError(t *testing.T, err error, path string, cause error) {
	t.Helper()
	var fileErr *FileError
	require.True(t, errors.As(err, &fileErr))
	require.Equal(t, path, fileErr.Path)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), path)
	require.Contains(t, err.Error(), cause.Error())
}

func TestLoadCredentialsFromFiles(t *testing.T) {
	d := t.TempDir()

	cert := &keys.OperationalCert{
		HotVKey:     []byte{0x01, 0x02, 0x03},
		IssueNumber: 1,
		KESPeriod:   7,
		Sigma:       []byte{0x04, 0x05},
	}
	cold := keys.VerificationKey{Role: keys.RoleStakePoolVKey, Bytes: []byte{0x06, 0x07}}
	certEnv, err := keys.EncodeOperationalCert(cert, cold)
	require.NoError(t, err)
	certPath := filepath.Join(d, "node.cert")
	require.NoError(t, certEnv.WriteFile(certPath))

	vrfEnv, err := keys.EncodeSigningKey(keys.RoleVRFSigningKey, "VRF Signing Key", []byte{0x08})
	require.NoError(t, err)
	vrfPath := filepath.Join(d, "vrf.skey")
	require.NoError(t, vrfEnv.WriteFile(vrfPath))

	kesEnv, err := keys.EncodeSigningKey(keys.RoleKESSigningKey, "KES Signing Key", []byte{0x09})
	require.NoError(t, err)
	kesPath := filepath.Join(d, "kes.skey")
	require.NoError(t, kesEnv.WriteFile(kesPath))

	paths := &CredentialPaths{
		CertificatePath: certPath,
		VRFKeyPath:      vrfPath,
		KESKeyPath:      kesPath,
	}
	creds, err := LoadCredentials(paths, keys.FileDecoder{})
	require.NoError(t, err)
	require.Equal(t, cert, creds.OpCert)
	require.Equal(t, keys.VerificationKey{Role: keys.RoleBlockIssuerVKey, Bytes: cold.Bytes}, creds.ColdKey)
	require.Equal(t, keys.VRFSigningKey([]byte{0x08}), creds.VRFKey)
	require.Equal(t, keys.KESSigningKey([]byte{0x09}), creds.KESKey)

	t.Run("swapped files", func(t *testing.T) {
		swapped := &CredentialPaths{
			CertificatePath: certPath,
			VRFKeyPath:      kesPath,
			KESKeyPath:      vrfPath,
		}
		_, err := LoadCredentials(swapped, keys.FileDecoder{})
		var fileErr *FileError
		require.True(t, errors.As(err, &fileErr))
		require.Equal(t, kesPath, fileErr.Path)
	})
}
