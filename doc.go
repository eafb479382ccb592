// Package recordcrypt implements the hybrid encryption layer used to
// protect health records before they are pinned to content-addressed
// storage, and to re-encrypt them for an authorized recipient without
// exposing the plaintext to any intermediary.
//
// The scheme is ECIES-style: an ECDH key agreement over secp256k1
// derives a per-message shared secret, AES-256-GCM encrypts the payload
// under a key derived from that secret, and the result is bundled into
// a self-contained JSON envelope of hex fields. Content digests
// (SHA-256) travel alongside envelopes so a verifier can confirm
// integrity after decryption, and producers sign those digests with the
// same secp256k1 identity keys they use on-chain.
//
// Basic usage:
//
//	env, err := recordcrypt.EncryptForRecipient(record, recipientPubHex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// ... pin env.Bytes() to storage, hand it to the recipient ...
//
//	plaintext, err := recordcrypt.DecryptEnvelope(env, recipientPrivHex)
//	if errors.Is(err, recordcrypt.ErrAuthenticationFailed) {
//	    // tampering or wrong key; no plaintext was produced
//	}
//
// Two envelope variants exist. EncryptForRecipient generates a fresh
// ephemeral key per message and records its public half in the
// envelope. EncryptFromSender keys the agreement with the sender's
// long-term private key instead and omits the ephemeral field; the
// reader then supplies the sender's public key to DecryptFromSender.
//
// Envelopes produced by the original platform derived the AES key by
// using the raw ECDH x-coordinate directly. New envelopes run the
// secret through HKDF-SHA-256 by default; pass WithRawSharedSecret to
// either side to round-trip legacy data.
//
// All operations are synchronous, CPU-bound, and free of shared mutable
// state; they may be called concurrently without coordination. The
// package performs no I/O and never logs key material.
package recordcrypt
