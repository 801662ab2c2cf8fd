// Package stats reports point-in-time counts of recorded security events.
package stats

import (
	"context"

	"github.com/ariebrainware/security-event-log/model"
)

// Counter is the query the aggregator needs from the event store.
type Counter interface {
	CountByEventType(ctx context.Context, types ...model.EventType) (map[model.EventType]int64, error)
}

// Stats is the fixed set of counts exposed by the stats endpoint.
type Stats struct {
	LoginFail  int64 `json:"login_fail"`
	BruteForce int64 `json:"brute_force"`
	PortScan   int64 `json:"port_scan"`
	Malware    int64 `json:"malware"`
}

// reported lists the event types that make up Stats. LOGIN_SUCCESS is
// intentionally absent.
var reported = []model.EventType{
	model.EventLoginFail,
	model.EventBruteForce,
	model.EventPortScan,
	model.EventMalware,
}

type Aggregator struct {
	counter Counter
}

func New(counter Counter) *Aggregator {
	return &Aggregator{counter: counter}
}

// Stats counts events at call time. Nothing is cached.
func (a *Aggregator) Stats(ctx context.Context) (Stats, error) {
	counts, err := a.counter.CountByEventType(ctx, reported...)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		LoginFail:  counts[model.EventLoginFail],
		BruteForce: counts[model.EventBruteForce],
		PortScan:   counts[model.EventPortScan],
		Malware:    counts[model.EventMalware],
	}, nil
}
