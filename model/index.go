package model

import (
	"math"
	"time"
)

// IndexSample is one (date, value) observation in a vegetation index
// time series
type IndexSample struct {
	Date  time.Time
	Value float64
}

// IndexSeries is the vegetation index time series for one site's clear
// scenes plus its summary statistics. An empty series is a valid state:
// the summary values are NaN sentinels so that downstream consumers can
// distinguish "no data" from an index value of zero.
type IndexSeries struct {
	Samples []IndexSample
	Mean    float64
	Min     float64
	Max     float64
	Range   float64
}

// Empty reports whether the series contains no observations
func (is IndexSeries) Empty() bool {
	return len(is.Samples) == 0
}

// NewIndexSeries derives the summary statistics for the given samples.
// The samples must already be sorted ascending by date.
func NewIndexSeries(samples []IndexSample) IndexSeries {
	series := IndexSeries{
		Samples: samples,
		Mean:    math.NaN(),
		Min:     math.NaN(),
		Max:     math.NaN(),
		Range:   math.NaN(),
	}
	if len(samples) == 0 {
		return series
	}

	sum := 0.0
	series.Min = samples[0].Value
	series.Max = samples[0].Value
	for _, sample := range samples {
		sum += sample.Value
		if sample.Value < series.Min {
			series.Min = sample.Value
		}
		if sample.Value > series.Max {
			series.Max = sample.Value
		}
	}
	series.Mean = sum / float64(len(samples))
	series.Range = series.Max - series.Min
	return series
}
