// Package rsacrypto provides the cryptographic primitives for the emotion
// cipher: RSA key pair generation, PEM serialization, and the RSA-OAEP
// message transform.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - RSA-2048 (configurable modulus, 2048-bit floor): asymmetric cipher for
//     encrypting whole messages under the recipient's public key.
//
//   - OAEP with SHA-256 (RFC 8017): padding scheme applied to every message,
//     with SHA-256 used for both the main hash and the MGF1 mask generation
//     function. The padding is randomized and integrity-checked on decrypt.
//
//   - PKCS#8 / SubjectPublicKeyInfo PEM: standard, independently loadable
//     containers for the private and public key halves.
//
//   - scrypt + AES-256-GCM: optional passphrase wrapping of the private key
//     blob at rest. The baseline persists keys unencrypted.
//
// Messages are bounded by the OAEP capacity of the modulus
// (keyBytes - 2*hashLen - 2, i.e. 190 bytes for a 2048-bit key). Oversized
// plaintexts are rejected, never chunked.
//
// All decryption failures are reported uniformly as [ErrDecryptionFailed]
// without distinguishing decode, length, or padding errors, so callers cannot
// be turned into a padding oracle.
package rsacrypto
