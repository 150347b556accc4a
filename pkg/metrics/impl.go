/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

import (
	"bytes"
	"sort"
	"strconv"
	"sync"
)

type metric struct {
	name    string
	generic string
}

func (m *metric) Name() string {
	return m.name
}

func (m *metric) Generic() string {
	return m.generic
}

type mapMetrics struct {
	metrics map[metric]float64
	lock    sync.Mutex
}

func newMetrics() IMetrics {
	return &mapMetrics{
		metrics: make(map[metric]float64),
	}
}

func (m *mapMetrics) Increase(metricName string, valueDelta float64) {
	m.increase(metric{name: metricName}, valueDelta)
}

func (m *mapMetrics) IncreaseGeneric(metricName string, generic string, valueDelta float64) {
	m.increase(metric{name: metricName, generic: generic}, valueDelta)
}

func (m *mapMetrics) Value(metricName string, generic string) float64 {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.metrics[metric{name: metricName, generic: generic}]
}

func (m *mapMetrics) increase(key metric, valueDelta float64) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.metrics[key] = m.metrics[key] + valueDelta
}

func (m *mapMetrics) List(cb func(metric IMetric, metricValue float64) (err error)) (err error) {
	m.lock.Lock()
	keys := make([]metric, 0, len(m.metrics))
	values := make(map[metric]float64, len(m.metrics))
	for k, v := range m.metrics {
		keys = append(keys, k)
		values[k] = v
	}
	m.lock.Unlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		return keys[i].generic < keys[j].generic
	})
	for i := range keys {
		if err = cb(&keys[i], values[keys[i]]); err != nil {
			return err
		}
	}
	return nil
}

func ToPrometheus(metric IMetric, metricValue float64) []byte {
	bb := bytes.Buffer{}
	bb.WriteString(metric.Name())
	if metric.Generic() != "" {
		bb.WriteString(`{generic="`)
		bb.WriteString(metric.Generic())
		bb.WriteString(`"}`)
	}
	bb.WriteRune(' ')
	bb.WriteString(strconv.FormatFloat(metricValue, 'f', -1, bitSize))
	bb.WriteRune('\n')
	return bb.Bytes()
}
