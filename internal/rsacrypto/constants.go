package rsacrypto

const (
	// DefaultKeyBits is the RSA modulus size used when none is configured.
	DefaultKeyBits = 2048

	// MinKeyBits is the smallest modulus size accepted for key generation.
	// Keys below this floor are rejected outright.
	MinKeyBits = 2048

	// OAEPHashSize is the size in bytes of the SHA-256 digest used for both
	// the OAEP hash and the MGF1 mask generation function.
	OAEPHashSize = 32

	// PEM block types for the standard key containers.
	pemTypePrivateKey = "PRIVATE KEY"
	pemTypePublicKey  = "PUBLIC KEY"

	// pemTypeWrappedKey is the PEM block type for a passphrase-wrapped
	// private key (scrypt + AES-256-GCM, parameters in the block headers).
	pemTypeWrappedKey = "EMOTION CIPHER ENCRYPTED PRIVATE KEY"

	// scrypt parameters for private key wrapping.
	scryptN       = 1 << 15
	scryptR       = 8
	scryptP       = 1
	wrapKeySize   = 32
	wrapSaltSize  = 16
	wrapNonceSize = 12
)

// CipherSuite is the canonical string representation of the algorithm suite.
var CipherSuite = "RSA-OAEP:SHA-256:MGF1-SHA-256"
