package crypto

import (
	"github.com/btcsuite/btcd/btcec/v2"
)

// SharedSecret performs ECDH between a local private key and a remote
// public key. If k is the private scalar and P the remote point, the
// result is the affine x-coordinate of k*P as 32 bytes.
//
// The result is deterministic for a fixed key pair, which is what lets
// the decrypt side reproduce the key the encrypt side used. It must be
// treated as key material: used to key the cipher (directly or through
// HKDF), then wiped — never logged or serialized.
func SharedSecret(priv *btcec.PrivateKey, pub *btcec.PublicKey) [SharedSecretSize]byte {
	var (
		remote btcec.JacobianPoint
		shared btcec.JacobianPoint
	)

	pub.AsJacobian(&remote)
	btcec.ScalarMultNonConst(&priv.Key, &remote, &shared)
	shared.ToAffine()

	secret := *shared.X.Bytes()
	shared.X.Zero()
	shared.Y.Zero()
	shared.Z.Zero()
	return secret
}

// Zeroize overwrites b with zeros. Best-effort hygiene for shared
// secrets and derived keys once they are no longer needed.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
