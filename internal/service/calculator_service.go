package service

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/fincalc-service/internal/api/dto"
	"github.com/spec-kit/fincalc-service/internal/cache"
	"github.com/spec-kit/fincalc-service/internal/calc"
	"github.com/spec-kit/fincalc-service/internal/domain"
	"github.com/spec-kit/fincalc-service/internal/events"
)

// DefaultCompoundingFrequency applies when a compound interest request omits
// compounding_frequency.
const DefaultCompoundingFrequency = 12

// CalculatorService runs validated inputs through the pure engine, caches
// results and publishes audit events. The engine never fails on validated
// input, so no method returns an error. Cache hits still publish audit
// events: caching must not change what gets recorded.
type CalculatorService struct {
	dispatcher events.Dispatcher
	cache      cache.CalculationCache
	logger     *zap.Logger
}

// NewCalculatorService builds the service. The cache may be nil when disabled.
func NewCalculatorService(dispatcher events.Dispatcher, resultCache cache.CalculationCache, logger *zap.Logger) *CalculatorService {
	return &CalculatorService{dispatcher: dispatcher, cache: resultCache, logger: logger}
}

// SimpleInterest computes interest and total for a simple interest request.
func (s *CalculatorService) SimpleInterest(ctx context.Context, principal, rate, timePeriod float64) *dto.SimpleInterestResponse {
	inputs := dto.SimpleInterestInputs{Principal: principal, Rate: rate, Time: timePeriod}
	key := cache.Key(string(domain.CalculationSimpleInterest), inputs)

	var response dto.SimpleInterestResponse
	if !s.fromCache(ctx, key, &response) {
		result := calc.SimpleInterest(
			decimal.NewFromFloat(principal),
			decimal.NewFromFloat(rate),
			decimal.NewFromFloat(timePeriod),
		)
		response = dto.SimpleInterestResponse{
			Success:         true,
			CalculationType: domain.CalculationSimpleInterest.ResponseName(),
			Inputs:          inputs,
			Results: dto.InterestResults{
				Interest:    result.Interest.InexactFloat64(),
				TotalAmount: result.Total.InexactFloat64(),
			},
		}
		s.toCache(ctx, key, &response)
	}

	s.publishAudit(domain.CalculationSimpleInterest, inputs, response.Results)
	return &response
}

// CompoundInterest computes interest and total for a compound interest
// request. Frequency is the effective value after defaulting.
func (s *CalculatorService) CompoundInterest(ctx context.Context, principal, rate, timePeriod float64, frequency int) *dto.CompoundInterestResponse {
	if frequency <= 0 {
		frequency = DefaultCompoundingFrequency
	}
	inputs := dto.CompoundInterestInputs{
		Principal:            principal,
		Rate:                 rate,
		Time:                 timePeriod,
		CompoundingFrequency: frequency,
	}
	key := cache.Key(string(domain.CalculationCompoundInterest), inputs)

	var response dto.CompoundInterestResponse
	if !s.fromCache(ctx, key, &response) {
		result := calc.CompoundInterest(
			decimal.NewFromFloat(principal),
			decimal.NewFromFloat(rate),
			decimal.NewFromFloat(timePeriod),
			frequency,
		)
		response = dto.CompoundInterestResponse{
			Success:         true,
			CalculationType: domain.CalculationCompoundInterest.ResponseName(),
			Inputs:          inputs,
			Results: dto.InterestResults{
				Interest:    result.Interest.InexactFloat64(),
				TotalAmount: result.Total.InexactFloat64(),
			},
		}
		s.toCache(ctx, key, &response)
	}

	s.publishAudit(domain.CalculationCompoundInterest, inputs, response.Results)
	return &response
}

// Installment computes the annuity payment and amortization schedule.
func (s *CalculatorService) Installment(ctx context.Context, principal, rate float64, installments int) *dto.InstallmentResponse {
	inputs := dto.InstallmentInputs{Principal: principal, Rate: rate, Installments: installments}
	key := cache.Key(string(domain.CalculationInstallment), inputs)

	var response dto.InstallmentResponse
	if !s.fromCache(ctx, key, &response) {
		result := calc.InstallmentPlan(
			decimal.NewFromFloat(principal),
			decimal.NewFromFloat(rate),
			installments,
		)

		breakdown := make([]dto.InstallmentPeriod, 0, len(result.Schedule))
		for _, period := range result.Schedule {
			breakdown = append(breakdown, dto.InstallmentPeriod{
				InstallmentNumber: period.Number,
				InstallmentAmount: period.Payment.InexactFloat64(),
				PrincipalPayment:  period.PrincipalPortion.InexactFloat64(),
				InterestPayment:   period.InterestPortion.InexactFloat64(),
				RemainingBalance:  period.RemainingBalance.InexactFloat64(),
			})
		}

		response = dto.InstallmentResponse{
			Success:         true,
			CalculationType: domain.CalculationInstallment.ResponseName(),
			Inputs:          inputs,
			Results: dto.InstallmentResults{
				InstallmentAmount: result.Payment.InexactFloat64(),
				TotalAmount:       result.Total.InexactFloat64(),
				TotalInterest:     result.TotalInterest.InexactFloat64(),
				Breakdown:         breakdown,
			},
		}
		s.toCache(ctx, key, &response)
	}

	s.publishAudit(domain.CalculationInstallment, inputs, response.Results)
	return &response
}

func (s *CalculatorService) fromCache(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Debug("discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *CalculatorService) toCache(ctx context.Context, key string, response any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(response)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, raw)
}

func (s *CalculatorService) publishAudit(calcType domain.CalculationType, inputs, results any) {
	requestData, err := json.Marshal(inputs)
	if err != nil {
		return
	}
	resultData, err := json.Marshal(results)
	if err != nil {
		return
	}
	s.dispatcher.Publish(events.Event{
		Type: events.EventCalculationPerformed,
		Payload: events.CalculationPerformedPayload{
			CalculationType: calcType,
			RequestData:     requestData,
			Result:          resultData,
		},
	})
}
