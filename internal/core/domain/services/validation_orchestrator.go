package services

import (
	"context"
	"sync"

	"orders/internal/core/domain/model/order"
)

// ValidationResult is the outcome of a single business-rule check.
// Validators never return errors for expected business-rule failures;
// transport problems against the backing service are folded into a
// rejection with a generic message.
type ValidationResult struct {
	Accepted bool
	Message  string
}

// Accept returns an accepting result with an optional message.
func Accept(message string) ValidationResult {
	return ValidationResult{Accepted: true, Message: message}
}

// Reject returns a rejecting result carrying the reason.
func Reject(message string) ValidationResult {
	return ValidationResult{Accepted: false, Message: message}
}

// OrderValidator answers "is this order acceptable according to my domain".
// Implementations receive the fully field-injected order and must be safe
// for concurrent use; the orchestrator never hands them a shared mutable
// value.
type OrderValidator interface {
	Validate(ctx context.Context, o *order.Order) ValidationResult
}

// ValidationOrchestrator is a domain service that runs a fixed set of
// independent business-rule validators against one order.
//
// Contract:
//   - All validators run concurrently against the same immutable order
//   - All validators run to completion; a failure never cancels the others
//   - The aggregate is accepted iff every validator accepted
//   - Failure messages are collected in registration order, not completion order
type ValidationOrchestrator struct {
	validators []OrderValidator
}

// NewValidationOrchestrator creates an orchestrator over the given validators.
// Registration order is fixed and determines the order of failure messages.
func NewValidationOrchestrator(validators ...OrderValidator) ValidationOrchestrator {
	return ValidationOrchestrator{
		validators: validators,
	}
}

// Validate fans out to every registered validator, waits for all of them,
// and returns the messages of every validator that rejected the order,
// in registration order. An empty slice means the order was fully accepted.
func (v ValidationOrchestrator) Validate(ctx context.Context, o *order.Order) ([]string, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	// Each validator writes only to its own slot; the join below is the
	// single point where results are combined.
	results := make([]ValidationResult, len(v.validators))

	var wg sync.WaitGroup
	for i, validator := range v.validators {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = validator.Validate(ctx, o)
		}()
	}
	wg.Wait()

	var failures []string
	for _, result := range results {
		if !result.Accepted {
			failures = append(failures, result.Message)
		}
	}

	return failures, nil
}
