package calculator

import (
	"errors"
	"fmt"

	"github.com/markcheno/go-talib"
)

// CalculateOBV returns the latest On-Balance Volume.
// OBV starts at the first bar's volume and adds or subtracts each later bar's
// volume by the direction of its close; unchanged closes leave it flat.
func CalculateOBV(closes, volumes []float64) (float64, error) {
	if len(closes) != len(volumes) {
		return 0, errors.New("closes and volumes differ in length")
	}
	if len(closes) == 0 {
		return 0, fmt.Errorf("OBV on empty series: %w", ErrInsufficientData)
	}
	obv := talib.Obv(closes, volumes)
	return obv[len(obv)-1], nil
}
