package app

import (
	"context"
	"fmt"

	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
	cryptoService "github.com/allisson/piiguard/internal/crypto/service"
	piiService "github.com/allisson/piiguard/internal/pii/service"
	piiUseCase "github.com/allisson/piiguard/internal/pii/usecase"
)

// KMSService opens gocloud.dev/secrets keepers.
func (c *Container) KMSService() cryptoService.KMSService {
	return c.kmsService.value(cryptoService.NewKMSService)
}

// sealingKeeper returns the keeper named by KEY_SEALING_URI, or nil when unset.
// The container closes it on Shutdown.
func (c *Container) sealingKeeper() (cryptoDomain.KMSKeeper, error) {
	return c.keeper.get(func() (cryptoDomain.KMSKeeper, error) {
		if c.config.KeySealingURI == "" {
			return nil, nil
		}
		keeper, err := c.KMSService().OpenKeeper(context.Background(), c.config.KeySealingURI)
		if err != nil {
			return nil, fmt.Errorf("failed to open key sealing keeper: %w", err)
		}
		return keeper, nil
	})
}

// KeyStore loads the RSA pair and the symmetric key file, creating the latter on
// first use.
func (c *Container) KeyStore() (cryptoService.KeyStore, error) {
	return c.keyStore.get(func() (cryptoService.KeyStore, error) {
		keeper, err := c.sealingKeeper()
		if err != nil {
			return nil, err
		}

		keyStore, err := cryptoService.NewFileKeyStore(cryptoService.KeyStoreConfig{
			SymmetricKeyPath:     c.config.SymmetricKeyPath,
			PublicKeyPath:        c.config.RSAPublicKeyPath,
			PrivateKeyPath:       c.config.RSAPrivateKeyPath,
			PrivateKeyPassphrase: c.config.RSAPrivateKeyPassphrase,
			Keeper:               keeper,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load key store: %w", err)
		}
		return keyStore, nil
	})
}

// FieldCipher encrypts and decrypts single PII columns.
func (c *Container) FieldCipher() (cryptoService.FieldEncrypter, error) {
	return c.fieldCipher.get(func() (cryptoService.FieldEncrypter, error) {
		keys, err := c.KeyStore()
		if err != nil {
			return nil, fmt.Errorf("failed to get key store for field cipher: %w", err)
		}
		return cryptoService.NewFieldCipher(keys), nil
	})
}

func (c *Container) Redactor() *piiService.Redactor {
	return c.redactor.value(piiService.NewRedactor)
}

// PIIUseCase returns the PII protection use case.
func (c *Container) PIIUseCase() (piiUseCase.UseCase, error) {
	return c.piiUseCase.get(func() (piiUseCase.UseCase, error) {
		fieldCipher, err := c.FieldCipher()
		if err != nil {
			return nil, fmt.Errorf("failed to get field cipher for pii use case: %w", err)
		}
		base := piiUseCase.NewPIIUseCase(fieldCipher, c.Redactor(), c.Logger())
		return instrumented(c, base, piiUseCase.NewPIIUseCaseWithMetrics)
	})
}
