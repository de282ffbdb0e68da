package costs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePolynomial(t *testing.T) {
	poly, err := Decode(`{"degree":2,"hum":"3 + n^2"}`)
	require.NoError(t, err)

	assert.False(t, poly.IsTop())
	assert.False(t, poly.IsZero())
	degree, ok := poly.Degree()
	require.True(t, ok)
	assert.Equal(t, 2, degree)
	assert.Equal(t, "3 + n^2", poly.String())
	assert.Equal(t, "2", poly.DegreeString())
}

func TestDecodePolynomialTop(t *testing.T) {
	poly, err := Decode(`{"top":true,"hum":"T"}`)
	require.NoError(t, err)

	assert.True(t, poly.IsTop())
	_, ok := poly.Degree()
	assert.False(t, ok)
	assert.Equal(t, "Top", poly.DegreeString())
}

func TestDecodePolynomialZero(t *testing.T) {
	poly, err := Decode(`{"zero":true,"degree":0,"hum":"0"}`)
	require.NoError(t, err)

	assert.True(t, poly.IsZero())
	degree, ok := poly.Degree()
	require.True(t, ok)
	assert.Equal(t, 0, degree)
	assert.Equal(t, "0", poly.DegreeString())
}

func TestDecodePolynomialMalformed(t *testing.T) {
	_, err := Decode("not json at all")
	assert.Error(t, err)
}

func TestCompareByDegree(t *testing.T) {
	mustDecode := func(encoded string) Polynomial {
		poly, err := Decode(encoded)
		require.NoError(t, err)
		return poly
	}

	top := mustDecode(`{"top":true,"hum":"T"}`)
	zero := mustDecode(`{"zero":true,"degree":0,"hum":"0"}`)
	linear := mustDecode(`{"degree":1,"hum":"2 + 5n"}`)
	quadratic := mustDecode(`{"degree":2,"hum":"n^2"}`)

	tests := []struct {
		name string
		a, b Polynomial
		sign int
	}{
		{"top above finite", top, quadratic, 1},
		{"finite below top", quadratic, top, -1},
		{"top equals top", top, top, 0},
		{"zero below positive", zero, linear, -1},
		{"degrees compare as ints", linear, quadratic, -1},
		{"equal degrees", linear, linear, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareByDegree(tt.a, tt.b)
			switch {
			case tt.sign > 0:
				assert.Positive(t, got)
			case tt.sign < 0:
				assert.Negative(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}
