// Package benchmark contains harnesses that time repeated encode and decode
// runs of the codec and summarize the samples.
package benchmark

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/ikmak/bson"
)

// Result summarizes the timing samples of one run.
type Result struct {
	Iterations int
	Mean       time.Duration
	Median     time.Duration
	P95        time.Duration
}

// Marshal times repeated encodes of the provided document.
func Marshal(iterations int, doc *bson.Document) (Result, error) {
	samples := make([]float64, 0, iterations)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		if _, err := doc.MarshalBSON(); err != nil {
			return Result{}, err
		}
		samples = append(samples, float64(time.Since(start)))
	}

	return summarize(samples)
}

// ReadDocument times repeated decodes of the provided raw document.
func ReadDocument(iterations int, b []byte) (Result, error) {
	samples := make([]float64, 0, iterations)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		if _, err := bson.ReadDocument(b); err != nil {
			return Result{}, err
		}
		samples = append(samples, float64(time.Since(start)))
	}

	return summarize(samples)
}

func summarize(samples []float64) (Result, error) {
	mean, err := stats.Mean(samples)
	if err != nil {
		return Result{}, err
	}
	median, err := stats.Median(samples)
	if err != nil {
		return Result{}, err
	}
	p95, err := stats.Percentile(samples, 95)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Iterations: len(samples),
		Mean:       time.Duration(mean),
		Median:     time.Duration(median),
		P95:        time.Duration(p95),
	}, nil
}
