// Package services contains domain services that coordinate behavior across
// the order aggregate and external business-rule checks.
//
// ValidationOrchestrator implements the fan-out/fan-in contract of order
// validation: every registered validator runs concurrently and to completion,
// and the aggregate decision is an all-accept with failure reasons reported
// in registration order.
package services
