package forecast

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// linearModel is a fitted ordinary-least-squares model. Feature order is
// fixed at fit time and must be reproduced exactly at prediction time.
type linearModel struct {
	intercept float64
	coeffs    []float64
}

// fitTrend fits value = intercept + slope*year.
func fitTrend(years, values []float64) (linearModel, error) {
	if len(values) < 2 || len(years) != len(values) {
		return linearModel{}, fmt.Errorf("%w: %d points", ErrInsufficientData, len(values))
	}
	if allEqual(years) {
		return linearModel{}, fmt.Errorf("%w: no year variation across %d points", ErrInsufficientData, len(years))
	}

	intercept, slope := stat.LinearRegression(years, values, nil, false)
	if math.IsNaN(intercept) || math.IsNaN(slope) {
		return linearModel{}, fmt.Errorf("%w: degenerate trend fit", ErrInsufficientData)
	}

	return linearModel{intercept: intercept, coeffs: []float64{slope}}, nil
}

// fitOLS fits value = intercept + sum(coeff_j * feature_j) by least squares.
// rows holds one feature vector per training observation.
func fitOLS(rows [][]float64, targets []float64) (linearModel, error) {
	n := len(rows)
	if n < 2 || n != len(targets) {
		return linearModel{}, fmt.Errorf("%w: %d points", ErrInsufficientData, n)
	}
	k := len(rows[0])
	if n < k+1 {
		return linearModel{}, fmt.Errorf("%w: %d points for %d features", ErrInsufficientData, n, k)
	}

	// Design matrix with a leading intercept column.
	x := mat.NewDense(n, k+1, nil)
	y := mat.NewVecDense(n, nil)
	for i, row := range rows {
		if len(row) != k {
			return linearModel{}, fmt.Errorf("ragged feature row: %d features, expected %d", len(row), k)
		}
		x.Set(i, 0, 1)
		for j, v := range row {
			x.Set(i, j+1, v)
		}
		y.SetVec(i, targets[i])
	}

	var beta mat.VecDense
	if err := beta.SolveVec(x, y); err != nil {
		return linearModel{}, fmt.Errorf("%w: %v", ErrInsufficientData, err)
	}

	coeffs := make([]float64, k)
	for j := 0; j < k; j++ {
		coeffs[j] = beta.AtVec(j + 1)
	}
	return linearModel{intercept: beta.AtVec(0), coeffs: coeffs}, nil
}

// predict applies the fitted model to one feature vector.
func (m linearModel) predict(features []float64) (float64, error) {
	if len(features) != len(m.coeffs) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(features), len(m.coeffs))
	}
	v := m.intercept
	for j, f := range features {
		v += m.coeffs[j] * f
	}
	return v, nil
}

func allEqual(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
