package math32

import (
	"math"
)

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
	Pi      = math.Pi
)

func Sqrt(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func Sin(v float32) float32 {
	return float32(math.Sin(float64(v)))
}

func Cos(v float32) float32 {
	return float32(math.Cos(float64(v)))
}

func Tan(v float32) float32 {
	return float32(math.Tan(float64(v)))
}

func Abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

/*
	NearlyEquals compares two float32 with an error margin
	http://floating-point-gui.de/errors/comparison/
*/
func NearlyEquals(a, b, epsilon float32) bool {
	// shortcut, handles infinities
	if a == b {
		return true
	}

	diff := Abs(a - b)

	// a or b or both are zero; relative error is meaningless there, so
	// compare absolutely. Single precision leaves residuals around 1e-8
	// (Cos(Pi/2) is -4.4e-8, not zero), well above a squared epsilon.
	if a*b == 0 {
		return diff < epsilon
	}

	// use relative error
	return diff/(Abs(a)+Abs(b)) < epsilon
}

func precisionEpsilon(precision int) float32 {
	return float32(math.Pow(10, float64(-precision)))
}
