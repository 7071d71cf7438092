package usecase

import (
	"context"
	"time"

	"github.com/allisson/piiguard/internal/metrics"
	piiDomain "github.com/allisson/piiguard/internal/pii/domain"
)

// piiUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type piiUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewPIIUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewPIIUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &piiUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *piiUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, p.metrics, "pii", operation, start, err)
}

// ProtectField records metrics for field encryption.
func (p *piiUseCaseWithMetrics) ProtectField(ctx context.Context, plaintext *string) (*string, error) {
	start := time.Now()
	field, err := p.next.ProtectField(ctx, plaintext)
	p.record(ctx, "protect_field", start, err)
	return field, err
}

// RevealField records metrics for field decryption.
func (p *piiUseCaseWithMetrics) RevealField(ctx context.Context, field *string) (*string, error) {
	start := time.Now()
	plaintext, err := p.next.RevealField(ctx, field)
	p.record(ctx, "reveal_field", start, err)
	return plaintext, err
}

// RedactForOutput is pure and not instrumented.
func (p *piiUseCaseWithMetrics) RedactForOutput(plaintext *string, kind piiDomain.Kind) string {
	return p.next.RedactForOutput(plaintext, kind)
}

// RevealAndRedact labels unreadable values separately so corrupted rows show up on dashboards.
func (p *piiUseCaseWithMetrics) RevealAndRedact(ctx context.Context, field *string, kind piiDomain.Kind) string {
	start := time.Now()
	out := p.next.RevealAndRedact(ctx, field, kind)

	status := metrics.StatusSuccess
	if out == piiDomain.Unreadable {
		status = metrics.StatusUnreadable
	}
	metrics.ObserveStatus(ctx, p.metrics, "pii", "reveal_and_redact", start, status)
	return out
}
