package config

// ApplicationConfiguration config specific to the node.
type ApplicationConfiguration struct {
	LogLevel string `yaml:"LogLevel"`
	LogPath  string `yaml:"LogPath"`
	// Leader is an optional set of leader credential file paths. A node
	// without it runs in non-leader mode.
	Leader *Leader `yaml:"Leader"`
}

// Leader is a set of file paths to the credentials a block-producing node
// needs. All three must be set for the node to lead, command-line flags
// override these values.
type Leader struct {
	CertificatePath string `yaml:"CertificatePath"`
	VRFKeyPath      string `yaml:"VRFKeyPath"`
	KESKeyPath      string `yaml:"KESKeyPath"`
}
