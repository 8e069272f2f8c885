// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/dlist/dlist"
)

var _ dlist.Observer = (*Metrics)(nil)

// Metrics reports node lifetime and list surgery to prometheus. It is safe
// to share one instance between lists owned by different goroutines.
type Metrics struct {
	allocated    prometheus.Counter
	freed        prometheus.Counter
	live         prometheus.Gauge
	splits       prometheus.Counter
	splitNodes   prometheus.Counter
	splices      prometheus.Counter
	splicedNodes prometheus.Counter
}

func New(namespace string, r prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		allocated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_allocated",
			Help:      "number of list nodes created",
		}),
		freed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_freed",
			Help:      "number of list nodes released",
		}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_nodes",
			Help:      "number of list nodes currently held by lists",
		}),
		splits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "splits",
			Help:      "number of cursor splits",
		}),
		splitNodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_nodes",
			Help:      "number of nodes moved out by splits",
		}),
		splices: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "splices",
			Help:      "number of splices and appends",
		}),
		splicedNodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spliced_nodes",
			Help:      "number of nodes moved in by splices and appends",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.allocated),
		r.Register(m.freed),
		r.Register(m.live),
		r.Register(m.splits),
		r.Register(m.splitNodes),
		r.Register(m.splices),
		r.Register(m.splicedNodes),
	)
	return m, errs.Err
}

func (m *Metrics) Allocated() {
	m.allocated.Inc()
	m.live.Inc()
}

func (m *Metrics) Freed() {
	m.freed.Inc()
	m.live.Dec()
}

func (m *Metrics) Split(moved int) {
	m.splits.Inc()
	m.splitNodes.Add(float64(moved))
}

func (m *Metrics) Spliced(moved int) {
	m.splices.Inc()
	m.splicedNodes.Add(float64(moved))
}
