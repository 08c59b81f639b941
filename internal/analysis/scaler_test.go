package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/stat"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := [][]float64{
		{10, 100},
		{20, 200},
		{30, 300},
	}

	scaler := &StandardScaler{}
	scaled := scaler.FitTransform(X)

	require.Len(t, scaled, 3)
	for j := 0; j < 2; j++ {
		col := []float64{scaled[0][j], scaled[1][j], scaled[2][j]}
		assert.InDelta(t, 0, stat.Mean(col, nil), 1e-9)
		assert.InDelta(t, 1, stat.StdDev(col, nil), 1e-9)
	}

	// Input must not be mutated.
	assert.Equal(t, 10.0, X[0][0])
}

func TestStandardScalerZeroVariance(t *testing.T) {
	X := [][]float64{
		{5, 1},
		{5, 2},
		{5, 3},
	}

	scaler := &StandardScaler{}
	scaled := scaler.FitTransform(X)

	for i := range scaled {
		assert.Equal(t, 0.0, scaled[i][0])
	}
}

func TestStandardScalerEmpty(t *testing.T) {
	scaler := &StandardScaler{}
	assert.Empty(t, scaler.FitTransform(nil))
}
