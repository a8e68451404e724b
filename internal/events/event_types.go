package events

import (
	"github.com/spec-kit/fincalc-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCalculationPerformed EventType = "calculation_performed"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type    EventType
	Payload interface{}
}

// CalculationPerformedPayload carries the audit echo of a finished
// calculation: the request inputs and the computed results, pre-serialized.
type CalculationPerformedPayload struct {
	CalculationType domain.CalculationType
	RequestData     []byte
	Result          []byte
}
