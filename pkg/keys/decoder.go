package keys

// FileDecoder decodes credential envelopes from the local file system. It is
// the production decoder handed to the credential validator.
type FileDecoder struct{}

// DecodeCertificate reads an operational certificate envelope from the given
// file and returns the certificate together with its cold verification key.
func (FileDecoder) DecodeCertificate(path string) (*OperationalCert, VerificationKey, error) {
	env, err := ReadEnvelopeFile(path, RoleOperationalCert)
	if err != nil {
		return nil, VerificationKey{}, err
	}
	return DecodeOperationalCert(env)
}

// DecodeVRFKey reads a VRF signing key envelope from the given file.
func (FileDecoder) DecodeVRFKey(path string) (VRFSigningKey, error) {
	env, err := ReadEnvelopeFile(path, RoleVRFSigningKey)
	if err != nil {
		return nil, err
	}
	key, err := DecodeSigningKey(env)
	if err != nil {
		return nil, err
	}
	return VRFSigningKey(key), nil
}

// DecodeKESKey reads a KES signing key envelope from the given file.
func (FileDecoder) DecodeKESKey(path string) (KESSigningKey, error) {
	env, err := ReadEnvelopeFile(path, RoleKESSigningKey)
	if err != nil {
		return nil, err
	}
	key, err := DecodeSigningKey(env)
	if err != nil {
		return nil, err
	}
	return KESSigningKey(key), nil
}
