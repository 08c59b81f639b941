package analysis

import "gonum.org/v1/gonum/stat"

// StandardScaler standardizes each feature column to zero mean and unit
// variance. Columns with zero variance are mapped to zero rather than
// dividing by zero.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// Fit computes per-column means and standard deviations from X.
func (s *StandardScaler) Fit(X [][]float64) {
	if len(X) == 0 {
		return
	}

	cols := len(X[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)

	col := make([]float64, len(X))
	for j := 0; j < cols; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		s.Mean[j] = stat.Mean(col, nil)
		if len(col) > 1 {
			s.Std[j] = stat.StdDev(col, nil)
		}
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
}

// Transform returns a standardized copy of X using the fitted parameters.
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Mean[j]) / s.Std[j]
		}
		out[i] = scaled
	}
	return out
}

// FitTransform fits the scaler on X and returns the standardized copy.
func (s *StandardScaler) FitTransform(X [][]float64) [][]float64 {
	s.Fit(X)
	return s.Transform(X)
}
