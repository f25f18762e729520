// Package estimator derives a mock weight/time/cost estimate from the byte
// size of an uploaded model file. It is a pricing heuristic, not a geometric
// analysis of the mesh.
package estimator

import (
	"errors"
	"fmt"
	"math"

	"github.com/polyforge/printdesk/internal/domain/model"
)

// ErrInvalidSize is returned for non-positive file sizes.
var ErrInvalidSize = errors.New("file size must be positive")

const bytesPerMB = 1 << 20

// Estimate maps a file size in bytes to weight, print time and base cost.
// Deterministic, no I/O.
func Estimate(sizeBytes int64) (model.Estimate, error) {
	if sizeBytes <= 0 {
		return model.Estimate{}, ErrInvalidSize
	}

	sizeMB := float64(sizeBytes) / bytesPerMB

	var weight float64
	switch {
	case sizeMB < 1:
		weight = math.Max(5, sizeMB*20)
	case sizeMB < 5:
		weight = 20 + (sizeMB-1)*15
	default:
		weight = 80 + (sizeMB-5)*10
	}

	minutes := int(math.Round(math.Max(30, weight*1.5+sizeMB*20)))

	return model.Estimate{
		WeightGrams: weight,
		PrintTime:   fmt.Sprintf("%dh %dm", minutes/60, minutes%60),
		BaseCost:    roundCents(weight * 0.25),
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
