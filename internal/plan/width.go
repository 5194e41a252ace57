package plan

import (
	"fmt"

	"regmap-generator/utils"
)

// CarrierBits returns the narrowest unsigned carrier width for a bit
// count: 8, 16, or 32. Widths outside 1..32 have no carrier.
func CarrierBits(width uint32) (int, error) {
	switch {
	case utils.IsInRange(1, width, 8):
		return 8, nil
	case utils.IsInRange(9, width, 16):
		return 16, nil
	case utils.IsInRange(17, width, 32):
		return 32, nil
	default:
		return 0, fmt.Errorf("no carrier type for width %d", width)
	}
}
