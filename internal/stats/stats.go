// Package stats summarises generated structures and checks sampler output.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrTooFewBuckets is returned when an angular test has fewer than two bins.
var ErrTooFewBuckets = errors.New("stats: need at least two buckets")

// Summary describes a sample of branch lengths.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes count, mean, sample standard deviation and range.
// An empty input yields the zero Summary.
func Summarize(lengths []int) Summary {
	if len(lengths) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(lengths))
	for i, v := range lengths {
		xs[i] = float64(v)
	}
	s := Summary{Count: len(xs), Min: floats.Min(xs), Max: floats.Max(xs)}
	if len(xs) == 1 {
		s.Mean = xs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	return s
}

// Uniformity is the result of a chi-square goodness-of-fit test.
type Uniformity struct {
	Buckets  int
	ChiSq    float64
	PValue   float64
	Observed []float64
}

// AngularUniformity bins the angle of every (x, y) direction into buckets
// equal sectors and tests the counts against a uniform distribution.
func AngularUniformity(xs, ys []float64, buckets int) (Uniformity, error) {
	if buckets < 2 {
		return Uniformity{}, ErrTooFewBuckets
	}
	n := min(len(xs), len(ys))
	obs := make([]float64, buckets)
	for i := 0; i < n; i++ {
		theta := math.Atan2(ys[i], xs[i])
		if theta < 0 {
			theta += 2 * math.Pi
		}
		b := int(theta / (2 * math.Pi) * float64(buckets))
		if b >= buckets {
			b = buckets - 1
		}
		obs[b]++
	}
	exp := make([]float64, buckets)
	for i := range exp {
		exp[i] = float64(n) / float64(buckets)
	}
	chi := stat.ChiSquare(obs, exp)
	dist := distuv.ChiSquared{K: float64(buckets - 1)}
	return Uniformity{
		Buckets:  buckets,
		ChiSq:    chi,
		PValue:   dist.Survival(chi),
		Observed: obs,
	}, nil
}
