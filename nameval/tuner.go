package nameval

import (
	"errors"
	"fmt"
	"math"
)

// minTuneSamples is the smallest data set the tuner accepts; a linear
// fit over fewer rows than this is noise.
const minTuneSamples = 10

// TuneSample pairs the feature values of one name with an external
// target observation (e.g. a market valuation).
type TuneSample struct {
	Features map[string]float64
	Target   float64
}

// OptimizeWeights fits an ordinary least-squares model of the target
// over the given feature columns and converts the coefficients into a
// weight map: absolute contribution, normalized to sum to 1. The
// second return value is the R² of the fit. Rows with a missing
// feature value are dropped.
func OptimizeWeights(samples []TuneSample, featureNames []string) (map[string]float64, float64, error) {
	if len(featureNames) == 0 {
		return nil, 0, errors.New("no feature columns given")
	}
	var rows [][]float64
	var targets []float64
	for _, s := range samples {
		row := make([]float64, 0, len(featureNames))
		complete := true
		for _, name := range featureNames {
			v, ok := s.Features[name]
			if !ok || math.IsNaN(v) {
				complete = false
				break
			}
			row = append(row, v)
		}
		if !complete {
			continue
		}
		rows = append(rows, row)
		targets = append(targets, s.Target)
	}
	if len(rows) < minTuneSamples {
		return nil, 0, fmt.Errorf("need at least %d complete samples, got %d", minTuneSamples, len(rows))
	}

	coefs, err := leastSquares(rows, targets)
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, c := range coefs[1:] {
		total += math.Abs(c)
	}
	if total == 0 {
		return nil, 0, errors.New("no usable correlation between features and target")
	}
	weights := make(map[string]float64, len(featureNames))
	for i, name := range featureNames {
		weights[name] = math.Abs(coefs[i+1]) / total
	}
	return weights, rSquared(rows, targets, coefs), nil
}

// leastSquares solves X'Xb = X'y for b, with an implicit intercept in
// column 0, using Gaussian elimination with partial pivoting.
func leastSquares(rows [][]float64, targets []float64) ([]float64, error) {
	p := len(rows[0]) + 1
	ata := make([][]float64, p)
	for i := range ata {
		ata[i] = make([]float64, p+1)
	}
	for r, row := range rows {
		x := make([]float64, p)
		x[0] = 1
		copy(x[1:], row)
		for i := 0; i < p; i++ {
			for j := 0; j < p; j++ {
				ata[i][j] += x[i] * x[j]
			}
			ata[i][p] += x[i] * targets[r]
		}
	}

	for col := 0; col < p; col++ {
		pivot := col
		for r := col + 1; r < p; r++ {
			if math.Abs(ata[r][col]) > math.Abs(ata[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(ata[pivot][col]) < 1e-12 {
			return nil, errors.New("feature matrix is singular")
		}
		ata[col], ata[pivot] = ata[pivot], ata[col]
		for r := 0; r < p; r++ {
			if r == col {
				continue
			}
			factor := ata[r][col] / ata[col][col]
			for c := col; c <= p; c++ {
				ata[r][c] -= factor * ata[col][c]
			}
		}
	}
	coefs := make([]float64, p)
	for i := 0; i < p; i++ {
		coefs[i] = ata[i][p] / ata[i][i]
	}
	return coefs, nil
}

func rSquared(rows [][]float64, targets []float64, coefs []float64) float64 {
	var mean float64
	for _, t := range targets {
		mean += t
	}
	mean /= float64(len(targets))

	var ssRes, ssTot float64
	for r, row := range rows {
		pred := coefs[0]
		for i, v := range row {
			pred += coefs[i+1] * v
		}
		d := targets[r] - pred
		ssRes += d * d
		t := targets[r] - mean
		ssTot += t * t
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
