package domain

import (
	"github.com/allisson/piiguard/internal/errors"
)

// Cryptographic operation error definitions.
//
// Decryption and unwrap failures wrap ErrInvalidInput so that an HTTP caller
// handing in a bad value gets a 422. Key material problems wrap ErrConfiguration
// and are expected to stop the process at startup.
var (
	// ErrInvalidKeySize indicates a symmetric key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrConfiguration, "invalid key size")

	// ErrDecryptionFailed indicates a field or backup payload could not be decrypted.
	//
	// It covers undecodable text, truncated input, ciphertext that is not a whole
	// number of blocks, invalid padding and plaintext that is not valid UTF-8.
	// The specific cause is never disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrUnsupportedVersion indicates a version-tagged value whose tag is unknown.
	ErrUnsupportedVersion = errors.Wrap(ErrDecryptionFailed, "unsupported version")

	// ErrUnwrapFailed indicates the wrapped backup key could not be recovered with
	// the private key: wrong key pair, corrupted blob or truncated framing.
	ErrUnwrapFailed = errors.Wrap(errors.ErrInvalidInput, "key unwrap failed")

	// ErrPrivateKeyUnavailable indicates the key store was built without a private key.
	ErrPrivateKeyUnavailable = errors.Wrap(errors.ErrConfiguration, "private key unavailable")

	// ErrInvalidDigest indicates a digest string is not 64 hex characters.
	ErrInvalidDigest = errors.Wrap(errors.ErrInvalidInput, "invalid digest")
)
