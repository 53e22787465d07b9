package interval

import (
	"encoding/json"
	"fmt"
)

func marshalPair(lo, hi float64) ([]byte, error) {
	return json.Marshal([2]float64{lo, hi})
}

func unmarshalPair(data []byte) (lo, hi float64, err error) {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return 0, 0, fmt.Errorf("interval: %w", err)
	}
	return pair[0], pair[1], nil
}

func formatPair(lo, hi float64) string {
	return fmt.Sprintf("[%g, %g]", lo, hi)
}
