package service

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testKeyPaths writes a fresh 2048-bit pair into a temp dir and returns a config
// pointing at it. The symmetric key file does not exist yet.
func testKeyPaths(t *testing.T) KeyStoreConfig {
	t.Helper()

	dir := t.TempDir()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	writeTestPublicKey(t, filepath.Join(dir, "public.pem"), &priv.PublicKey)
	writePEM(t, filepath.Join(dir, "private.pem"), "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(priv))

	return KeyStoreConfig{
		SymmetricKeyPath: filepath.Join(dir, "aes.key"),
		PublicKeyPath:    filepath.Join(dir, "public.pem"),
		PrivateKeyPath:   filepath.Join(dir, "private.pem"),
	}
}

func writeTestPublicKey(t *testing.T, path string, pub *rsa.PublicKey) {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	writePEM(t, path, "PUBLIC KEY", der)
}

func writePEM(t *testing.T, path, blockType string, der []byte) {
	t.Helper()
	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func newTestKeyStore(t *testing.T) *FileKeyStore {
	t.Helper()
	ks, err := NewFileKeyStore(testKeyPaths(t))
	require.NoError(t, err)
	return ks
}
