// Package colores implements the color-theory engine behind palette and
// combination suggestions: hex parsing, HSV/HSL conversion, scheme
// generation and WCAG 2.0 contrast analysis.
package colores

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// hexPattern matches '#' plus exactly six hex digits, case-insensitive.
var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var ErrHexInvalido = errors.New("codigo hexadecimal invalido")

// HexValido reports whether s is a storable color code (leading '#' required).
func HexValido(s string) bool { return hexPattern.MatchString(s) }

// RGB is a color with channels clamped to [0,255].
type RGB struct {
	R, G, B int
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func NewRGB(r, g, b int) RGB { return RGB{clamp(r), clamp(g), clamp(b)} }

// ParseHex accepts "#RRGGBB" or "RRGGBB", any digit case.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, ErrHexInvalido
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, ErrHexInvalido
	}
	return RGB{int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)}, nil
}

// Hex renders the color as "#RRGGBB", upper-case.
func (c RGB) Hex() string { return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B) }

// ── HSV / HSL conversions ────────────────────────────────────────────────────

// HSV returns hue, saturation and value, each in [0,1].
func (c RGB) HSV() (h, s, v float64) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	v = max
	d := max - min
	if max > 0 {
		s = d / max
	}
	if d == 0 {
		return 0, s, v
	}
	switch max {
	case r:
		h = math.Mod((g-b)/d, 6) / 6
	case g:
		h = ((b-r)/d + 2) / 6
	default:
		h = ((r-g)/d + 4) / 6
	}
	if h < 0 {
		h++
	}
	return h, s, v
}

// FromHSV builds an RGB from hue, saturation, value in [0,1].
func FromHSV(h, s, v float64) RGB {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return NewRGB(int(math.Round(r*255)), int(math.Round(g*255)), int(math.Round(b*255)))
}

// HSL returns hue, lightness and saturation, each in [0,1].
func (c RGB) HSL() (h, l, s float64) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	d := max - min
	if d == 0 {
		return 0, l, 0
	}
	if l < 0.5 {
		s = d / (max + min)
	} else {
		s = d / (2 - max - min)
	}
	switch max {
	case r:
		h = math.Mod((g-b)/d, 6) / 6
	case g:
		h = ((b-r)/d + 2) / 6
	default:
		h = ((r-g)/d + 4) / 6
	}
	if h < 0 {
		h++
	}
	return h, l, s
}

// FromHSL builds an RGB from hue, lightness, saturation in [0,1].
func FromHSL(h, l, s float64) RGB {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	if s == 0 {
		v := int(math.Round(l * 255))
		return NewRGB(v, v, v)
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hueToRGB := func(t float64) float64 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		switch {
		case t < 1.0/6:
			return p + (q-p)*6*t
		case t < 1.0/2:
			return q
		case t < 2.0/3:
			return p + (q-p)*(2.0/3-t)*6
		default:
			return p
		}
	}
	return NewRGB(
		int(math.Round(hueToRGB(h+1.0/3)*255)),
		int(math.Round(hueToRGB(h)*255)),
		int(math.Round(hueToRGB(h-1.0/3)*255)),
	)
}

// ── Contrast analysis (WCAG 2.0) ─────────────────────────────────────────────

func luminanciaRelativa(c RGB) float64 {
	lin := func(v float64) float64 {
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	r := lin(float64(c.R) / 255)
	g := lin(float64(c.G) / 255)
	b := lin(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contraste returns the WCAG relative contrast ratio between two hex colors,
// in [1,21].
func Contraste(hex1, hex2 string) (float64, error) {
	c1, err := ParseHex(hex1)
	if err != nil {
		return 0, err
	}
	c2, err := ParseHex(hex2)
	if err != nil {
		return 0, err
	}
	l1, l2 := luminanciaRelativa(c1), luminanciaRelativa(c2)
	if l2 > l1 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05), nil
}

// EsClaro reports whether a hex color is perceptually light.
func EsClaro(hex string) (bool, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return false, err
	}
	lum := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return lum > 127.5, nil
}

// ColorTextoSugerido picks black or white text for the given background.
func ColorTextoSugerido(fondo string) (string, error) {
	claro, err := EsClaro(fondo)
	if err != nil {
		return "", err
	}
	if claro {
		return "#000000", nil
	}
	return "#FFFFFF", nil
}

// ColorAsaAutomatico picks the handle color (black on light bodies, white on
// dark ones) using HSL lightness of the body color.
func ColorAsaAutomatico(cuerpo string) (string, error) {
	c, err := ParseHex(cuerpo)
	if err != nil {
		return "", err
	}
	_, l, _ := c.HSL()
	if l > 0.5 {
		return "#000000", nil
	}
	return "#FFFFFF", nil
}
