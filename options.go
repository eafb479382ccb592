package recordcrypt

// schemeConfig holds configuration shared by the encrypt and decrypt paths.
type schemeConfig struct {
	// rawSharedSecret selects the legacy key derivation: the raw ECDH
	// x-coordinate is used directly as the AES-256 key, matching
	// envelopes produced by the original platform. The default path
	// stretches the secret with HKDF-SHA-256 first.
	rawSharedSecret bool
}

// Option configures an encryption or decryption operation.
type Option func(*schemeConfig)

// WithRawSharedSecret uses the raw ECDH shared secret as the symmetric
// key instead of deriving one with HKDF-SHA-256.
//
// This exists for compatibility with envelopes pinned by the original
// system and is weaker than the default; do not use it for new data.
// The envelope does not record which derivation was used, so the same
// option must be passed on both the encrypt and decrypt side.
func WithRawSharedSecret() Option {
	return func(c *schemeConfig) {
		c.rawSharedSecret = true
	}
}

func newSchemeConfig(opts []Option) *schemeConfig {
	cfg := &schemeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
