// Package metrics implements the observability sink for creation events.
package metrics

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// metricsNamespace is the namespace the creation metrics are published under.
const metricsNamespace = "ecommerce.orders"

// EMFEmitter implements ports.Metrics by writing one CloudWatch Embedded
// Metric Format document per creation event, tagged with the deployment
// environment dimension. It also keeps running counters so the periodic
// stats job can report totals since process start.
//
// Emission is a side effect only; a failed write never influences the
// pipeline's decision.
type EMFEmitter struct {
	environment string
	out         io.Writer
	now         func() time.Time

	mu            sync.Mutex
	ordersCreated int64
	ordersValue   float64
}

// NewEMFEmitter creates an emitter writing EMF documents to out, tagged with
// the given environment name.
func NewEMFEmitter(environment string, out io.Writer) *EMFEmitter {
	return &EMFEmitter{
		environment: environment,
		out:         out,
		now:         time.Now,
	}
}

type emfMetricName struct {
	Name string `json:"Name"`
}

type emfMetricDirective struct {
	Namespace  string          `json:"Namespace"`
	Dimensions [][]string      `json:"Dimensions"`
	Metrics    []emfMetricName `json:"Metrics"`
}

type emfMetadata struct {
	// Timestamp is in milliseconds.
	Timestamp         int64                `json:"Timestamp"`
	CloudWatchMetrics []emfMetricDirective `json:"CloudWatchMetrics"`
}

type emfDocument struct {
	OrderCreatedTotal float64     `json:"orderCreatedTotal"`
	OrderCreated      int         `json:"orderCreated"`
	Environment       string      `json:"environment"`
	AWS               emfMetadata `json:"_aws"`
}

// OrderCreated records one creation event carrying the order's total value.
func (e *EMFEmitter) OrderCreated(total float64) {
	document := emfDocument{
		OrderCreatedTotal: total,
		OrderCreated:      1,
		Environment:       e.environment,
		AWS: emfMetadata{
			Timestamp: e.now().UnixMilli(),
			CloudWatchMetrics: []emfMetricDirective{{
				Namespace:  metricsNamespace,
				Dimensions: [][]string{{"environment"}},
				Metrics: []emfMetricName{
					{Name: "orderCreatedTotal"},
					{Name: "orderCreated"},
				},
			}},
		},
	}

	line, err := json.Marshal(document)
	if err != nil {
		return
	}
	line = append(line, '\n')

	e.mu.Lock()
	defer e.mu.Unlock()

	_, _ = e.out.Write(line)
	e.ordersCreated++
	e.ordersValue += total
}

// Snapshot returns the number of creation events and their accumulated
// value since process start.
func (e *EMFEmitter) Snapshot() (ordersCreated int64, ordersValue float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.ordersCreated, e.ordersValue
}
