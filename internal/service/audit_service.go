package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/fincalc-service/internal/domain"
	"github.com/spec-kit/fincalc-service/internal/events"
	"github.com/spec-kit/fincalc-service/internal/observability"
	"github.com/spec-kit/fincalc-service/internal/repository"
)

// AuditService persists calculation events. Writes are strictly best effort:
// failures are logged and counted, never propagated to the request path.
type AuditService struct {
	logs       repository.AuditLogRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	timeout    time.Duration
}

// NewAuditService builds the service.
func NewAuditService(logs repository.AuditLogRepository, dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) *AuditService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AuditService{
		logs:       logs,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		timeout:    timeout,
	}
}

// RegisterHandlers subscribes the audit writer to calculation events.
func (s *AuditService) RegisterHandlers() {
	s.dispatcher.Subscribe(events.EventCalculationPerformed, s.handleCalculationPerformed)
}

func (s *AuditService) handleCalculationPerformed(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.CalculationPerformedPayload)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	record := &domain.AuditRecord{
		CalculationType: payload.CalculationType,
		RequestData:     payload.RequestData,
		Result:          payload.Result,
	}
	if err := s.logs.Insert(ctx, record); err != nil {
		s.metrics.RecordAuditFailure()
		s.logger.Warn("audit log write failed",
			zap.String("calculation_type", string(payload.CalculationType)),
			zap.Error(err),
		)
	}
	return nil
}
