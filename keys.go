package recordcrypt

import "github.com/healthledger/recordcrypt-go/internal/crypto"

// KeyPair is secp256k1 key material at the API boundary, hex-encoded.
// The public key is in compressed form. Private keys are never written
// into envelopes or any other output of this package.
type KeyPair struct {
	PrivateKeyHex string
	PublicKeyHex  string
}

// GenerateKeyPair creates a new random secp256k1 identity keypair.
// Identity lifecycle (storage, rotation, registration on-chain) belongs
// to the caller; this package only produces and consumes raw material.
func GenerateKeyPair() (*KeyPair, error) {
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, err
	}

	serialized := kp.Priv.Serialize()
	defer crypto.Zeroize(serialized)

	return &KeyPair{
		PrivateKeyHex: crypto.ToHex(serialized),
		PublicKeyHex:  kp.PublicKeyHex,
	}, nil
}

// PublicKeyFromPrivate derives the compressed public key for a
// hex-encoded private key.
func PublicKeyFromPrivate(privateKeyHex string) (string, error) {
	priv, err := crypto.ParsePrivateKey(privateKeyHex)
	if err != nil {
		return "", wrapKeyError(err)
	}
	defer priv.Zero()

	return crypto.ToHex(priv.PubKey().SerializeCompressed()), nil
}
