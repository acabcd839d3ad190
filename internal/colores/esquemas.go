package colores

import (
	"fmt"
	"math"
	"strings"
)

// Scheme generators. Each takes a base "#RRGGBB" color and returns the base
// plus its derived companions, upper-cased. The saved-combination enum only
// admits armonico/complementario/analogo; the extended schemes are exposed
// for suggestion endpoints only.

// Complementario returns the base color and its 180° opposite.
func Complementario(base string) ([]string, error) {
	c, err := ParseHex(base)
	if err != nil {
		return nil, err
	}
	h, s, v := c.HSV()
	return []string{c.Hex(), FromHSV(h+0.5, s, v).Hex()}, nil
}

// Analogo returns n colors at alternating ±30° steps around the base hue.
func Analogo(base string, n int) ([]string, error) {
	c, err := ParseHex(base)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		n = 3
	}
	h, s, v := c.HSV()
	const paso = 30.0 / 360.0
	out := []string{c.Hex()}
	for i := 1; i < n; i++ {
		var nh float64
		if i%2 == 1 {
			nh = h + paso*float64((i+1)/2)
		} else {
			nh = h - paso*float64(i/2)
		}
		out = append(out, FromHSV(nh, s, v).Hex())
	}
	return out, nil
}

// Triadico returns three colors 120° apart.
func Triadico(base string) ([]string, error) {
	c, err := ParseHex(base)
	if err != nil {
		return nil, err
	}
	h, s, v := c.HSV()
	return []string{
		c.Hex(),
		FromHSV(h+120.0/360.0, s, v).Hex(),
		FromHSV(h+240.0/360.0, s, v).Hex(),
	}, nil
}

// Tetradico returns four colors 90° apart (two complementary pairs).
func Tetradico(base string) ([]string, error) {
	c, err := ParseHex(base)
	if err != nil {
		return nil, err
	}
	h, s, v := c.HSV()
	out := []string{c.Hex()}
	for i := 1; i <= 3; i++ {
		out = append(out, FromHSV(h+float64(i)*90.0/360.0, s, v).Hex())
	}
	return out, nil
}

// Monocromatico returns n lightness variations of the same hue, spread
// between 0.2 and 0.9.
func Monocromatico(base string, n int) ([]string, error) {
	c, err := ParseHex(base)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		n = 4
	}
	h, l, s := c.HSL()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		nl := l
		if n > 1 {
			nl = 0.2 + 0.7*float64(i)/float64(n-1)
		}
		out = append(out, FromHSL(h, nl, s).Hex())
	}
	return out, nil
}

// Armonico returns colors that sit well together: small hue steps with
// gentle saturation/value drift.
func Armonico(base string, n int) ([]string, error) {
	c, err := ParseHex(base)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		n = 3
	}
	h, s, v := c.HSV()
	out := []string{c.Hex()}
	for i := 1; i < n; i++ {
		nh := h + float64(i)*15.0/360.0
		ns := math.Max(0.3, math.Min(1.0, s-float64(i)*0.1))
		nv := math.Max(0.4, math.Min(1.0, v+float64(i)*0.05))
		out = append(out, FromHSV(nh, ns, nv).Hex())
	}
	return out, nil
}

// GenerarEsquema dispatches by scheme name (case-insensitive). Supported:
// armonico, complementario, analogo, triadico, tetradico, monocromatico.
func GenerarEsquema(tipo, base string, n int) ([]string, error) {
	switch strings.ToLower(strings.TrimSpace(tipo)) {
	case "complementario":
		return Complementario(base)
	case "analogo":
		return Analogo(base, n)
	case "triadico":
		return Triadico(base)
	case "tetradico":
		return Tetradico(base)
	case "monocromatico":
		return Monocromatico(base, n)
	case "armonico":
		return Armonico(base, n)
	default:
		return nil, fmt.Errorf("tipo de esquema no valido: %s", tipo)
	}
}
