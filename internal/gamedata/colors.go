package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("hex color %q: want 6 digits, got %d", hex, len(digits))
	}

	var rgb [3]int32
	for i := range rgb {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("hex color %q: %w", hex, err)
		}
		rgb[i] = int32(v)
	}
	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}
