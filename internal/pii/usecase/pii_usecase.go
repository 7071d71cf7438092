package usecase

import (
	"context"
	"errors"
	"log/slog"

	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
	cryptoService "github.com/allisson/piiguard/internal/crypto/service"
	piiDomain "github.com/allisson/piiguard/internal/pii/domain"
	piiService "github.com/allisson/piiguard/internal/pii/service"
)

type piiUseCase struct {
	cipher   cryptoService.FieldEncrypter
	redactor *piiService.Redactor
	logger   *slog.Logger
}

// NewPIIUseCase creates a UseCase over cipher.
func NewPIIUseCase(
	cipher cryptoService.FieldEncrypter,
	redactor *piiService.Redactor,
	logger *slog.Logger,
) UseCase {
	return &piiUseCase{
		cipher:   cipher,
		redactor: redactor,
		logger:   logger,
	}
}

func (p *piiUseCase) ProtectField(ctx context.Context, plaintext *string) (*string, error) {
	if plaintext == nil {
		return nil, nil
	}
	field, err := p.cipher.Encrypt(ctx, *plaintext)
	if err != nil {
		return nil, err
	}
	return &field, nil
}

func (p *piiUseCase) RevealField(ctx context.Context, field *string) (*string, error) {
	if field == nil {
		return nil, nil
	}
	plaintext, err := p.cipher.Decrypt(ctx, *field)
	if err != nil {
		return nil, err
	}
	return &plaintext, nil
}

func (p *piiUseCase) RedactForOutput(plaintext *string, kind piiDomain.Kind) string {
	return p.redactor.Redact(plaintext, kind)
}

func (p *piiUseCase) RevealAndRedact(ctx context.Context, field *string, kind piiDomain.Kind) string {
	plaintext, err := p.RevealField(ctx, field)
	if err != nil {
		// Log the ciphertext fingerprint only; it identifies the row without exposing data.
		level := slog.LevelError
		if errors.Is(err, cryptoDomain.ErrDecryptionFailed) {
			level = slog.LevelWarn
		}
		p.logger.Log(ctx, level, "stored field is unreadable",
			slog.String("field_fp", p.redactor.LogFingerprint(field)),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		return piiDomain.Unreadable
	}
	return p.redactor.Redact(plaintext, kind)
}
