/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

type IMetric interface {
	Name() string

	// Generic returns empty string when not specified
	Generic() string
}

type IMetrics interface {
	// Increase metric value with "delta".
	// The default metric value is always 0.
	// Naming best practices: https://prometheus.io/docs/practices/naming/
	//
	// @ConcurrentAccess
	Increase(metricName string, valueDelta float64)

	// Increase generic function metric value with "delta".
	//
	// @ConcurrentAccess
	IncreaseGeneric(metricName string, generic string, valueDelta float64)

	// Returns current metric value. Returns 0 if metric is not increased yet.
	//
	// @ConcurrentAccess
	Value(metricName string, generic string) float64

	// List lists current values of all metrics ordered by name and generic
	//
	// @ConcurrentAccess
	List(cb func(metric IMetric, metricValue float64) (err error)) (err error)
}
