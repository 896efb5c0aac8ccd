package domain

import (
	"fmt"
	"math"
	"strconv"
)

// MixColor blends a "#rrggbb" base color toward white by (1 - intensity).
// Full intensity returns the base color unchanged; zero intensity returns
// pure white. A malformed color is returned as-is rather than failing,
// since a wrong-but-present color still renders.
func MixColor(baseColor string, intensity float64) string {
	r, g, b, ok := parseHexColor(baseColor)
	if !ok {
		return baseColor
	}

	whiteBlend := 1 - intensity
	return fmt.Sprintf("#%02x%02x%02x",
		blendChannel(r, whiteBlend),
		blendChannel(g, whiteBlend),
		blendChannel(b, whiteBlend),
	)
}

func blendChannel(c int64, whiteBlend float64) uint8 {
	return uint8(math.Round(float64(c) + float64(255-c)*whiteBlend))
}

func parseHexColor(s string) (r, g, b int64, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	var err error
	if r, err = strconv.ParseInt(s[1:3], 16, 0); err != nil {
		return 0, 0, 0, false
	}
	if g, err = strconv.ParseInt(s[3:5], 16, 0); err != nil {
		return 0, 0, 0, false
	}
	if b, err = strconv.ParseInt(s[5:7], 16, 0); err != nil {
		return 0, 0, 0, false
	}
	return r, g, b, true
}
