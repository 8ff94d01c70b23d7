package theme

import (
	"math"
	"strconv"
	"strings"

	"benv/pkg/errors"

	"github.com/charmbracelet/lipgloss"
)

// ParseColor parses a CSS-ish color string: #rgb, #rrggbb, or
// oklch(L% C H). The result is normalized to #rrggbb form.
func ParseColor(s string) (lipgloss.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New(errors.ErrThemeParse, "empty color")
	}

	if strings.HasPrefix(s, "#") {
		return parseHexColor(strings.TrimPrefix(s, "#"))
	}

	if strings.HasPrefix(s, "oklch(") && strings.HasSuffix(s, ")") {
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "oklch("), ")")
		return parseOklch(inner)
	}

	return "", errors.Newf(errors.ErrThemeParse, "unsupported color format: %s", s)
}

func parseHexColor(hex string) (lipgloss.Color, error) {
	hex = strings.TrimSpace(hex)

	var r, g, b uint64
	var err error
	switch len(hex) {
	case 6:
		if r, err = strconv.ParseUint(hex[0:2], 16, 8); err == nil {
			if g, err = strconv.ParseUint(hex[2:4], 16, 8); err == nil {
				b, err = strconv.ParseUint(hex[4:6], 16, 8)
			}
		}
	case 3:
		if r, err = strconv.ParseUint(strings.Repeat(hex[0:1], 2), 16, 8); err == nil {
			if g, err = strconv.ParseUint(strings.Repeat(hex[1:2], 2), 16, 8); err == nil {
				b, err = strconv.ParseUint(strings.Repeat(hex[2:3], 2), 16, 8)
			}
		}
	default:
		return "", errors.Newf(errors.ErrThemeParse, "invalid hex color: #%s", hex)
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrThemeParse, "invalid hex color: #%s", hex)
	}

	return rgbColor(uint8(r), uint8(g), uint8(b)), nil
}

// parseOklch parses "<L%> <C> <H>" and converts it to sRGB.
func parseOklch(inner string) (lipgloss.Color, error) {
	parts := strings.Fields(inner)
	if len(parts) < 3 {
		return "", errors.Newf(errors.ErrThemeParse, "invalid oklch(): %s", inner)
	}

	var l float64
	var err error
	if strings.HasSuffix(parts[0], "%") {
		l, err = strconv.ParseFloat(strings.TrimSuffix(parts[0], "%"), 64)
		l /= 100.0
	} else {
		l, err = strconv.ParseFloat(parts[0], 64)
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrThemeParse, "invalid oklch lightness: %s", parts[0])
	}

	c, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrThemeParse, "invalid oklch chroma: %s", parts[1])
	}

	hDeg, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrThemeParse, "invalid oklch hue: %s", parts[2])
	}

	rLin, gLin, bLin := oklchToLinearSRGBGamutMapped(l, c, hDeg)
	return rgbColor(toSRGB8(rLin), toSRGB8(gLin), toSRGB8(bLin)), nil
}

func rgbColor(r, g, b uint8) lipgloss.Color {
	const digits = "0123456789abcdef"
	return lipgloss.Color(string([]byte{
		'#',
		digits[r>>4], digits[r&0xf],
		digits[g>>4], digits[g&0xf],
		digits[b>>4], digits[b&0xf],
	}))
}

// toSRGB8 applies the sRGB transfer function to a linear component and
// quantizes it to 8 bits.
func toSRGB8(x float64) uint8 {
	x = clamp01(x)
	var srgb float64
	if x <= 0.0031308 {
		srgb = 12.92 * x
	} else {
		srgb = 1.055*math.Pow(x, 1.0/2.4) - 0.055
	}
	return uint8(math.Round(clamp01(srgb) * 255.0))
}

// oklchToLinearSRGBGamutMapped converts OKLCH to linear sRGB. Colors
// outside the sRGB gamut are mapped back by bisecting chroma toward zero
// with lightness and hue held constant, which is how CSS handles
// oklch() values a display cannot show.
func oklchToLinearSRGBGamutMapped(l, c, hDeg float64) (float64, float64, float64) {
	if c <= 0 {
		return oklabToLinearSRGB(l, 0, 0)
	}

	r0, g0, b0 := oklchToLinearSRGB(l, c, hDeg)
	if inGamut(r0, g0, b0) {
		return r0, g0, b0
	}

	lo, hi := 0.0, c
	for i := 0; i < 28; i++ {
		mid := (lo + hi) / 2
		if r, g, b := oklchToLinearSRGB(l, mid, hDeg); inGamut(r, g, b) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return oklchToLinearSRGB(l, lo, hDeg)
}

func oklchToLinearSRGB(l, c, hDeg float64) (float64, float64, float64) {
	h := hDeg * math.Pi / 180.0
	return oklabToLinearSRGB(l, c*math.Cos(h), c*math.Sin(h))
}

// oklabToLinearSRGB implements the OKLab to linear sRGB transform
// (Björn Ottosson's reference matrices).
func oklabToLinearSRGB(l, a, b float64) (float64, float64, float64) {
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l3 := l_ * l_ * l_
	m3 := m_ * m_ * m_
	s3 := s_ * s_ * s_

	rLin := 4.0767416621*l3 - 3.3077115913*m3 + 0.2309699292*s3
	gLin := -1.2684380046*l3 + 2.6097574011*m3 - 0.3413193965*s3
	bLin := -0.0041960863*l3 - 0.7034186147*m3 + 1.7076147010*s3

	return rLin, gLin, bLin
}

func inGamut(r, g, b float64) bool {
	return r >= 0 && r <= 1 && g >= 0 && g <= 1 && b >= 0 && b <= 1
}

func clamp01(x float64) float64 {
	return math.Min(1, math.Max(0, x))
}
