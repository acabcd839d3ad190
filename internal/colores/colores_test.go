package colores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexValido(t *testing.T) {
	assert.True(t, HexValido("#AABBCC"))
	assert.True(t, HexValido("#aabbcc"))
	assert.True(t, HexValido("#112233"))

	assert.False(t, HexValido("AABBCC"), "leading '#' is mandatory")
	assert.False(t, HexValido("#ABC"))
	assert.False(t, HexValido("#AABBCCDD"))
	assert.False(t, HexValido("#GGGGGG"))
	assert.False(t, HexValido(""))
}

func TestParseHexRoundtrip(t *testing.T) {
	c, err := ParseHex("#FF8800")
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 136, 0}, c)
	assert.Equal(t, "#FF8800", c.Hex())

	// lower-case and bare forms parse too
	c2, err := ParseHex("ff8800")
	require.NoError(t, err)
	assert.Equal(t, c, c2)
}

func TestParseHexInvalido(t *testing.T) {
	for _, s := range []string{"", "#12345", "#1234567", "#ZZZZZZ", "rojo"} {
		_, err := ParseHex(s)
		assert.ErrorIs(t, err, ErrHexInvalido, "input %q", s)
	}
}

func TestNewRGBClampea(t *testing.T) {
	assert.Equal(t, RGB{0, 255, 128}, NewRGB(-10, 300, 128))
}

func TestHSVRoundtrip(t *testing.T) {
	for _, hex := range []string{"#FF0000", "#00FF00", "#0000FF", "#8040C0", "#123456"} {
		c, err := ParseHex(hex)
		require.NoError(t, err)
		h, s, v := c.HSV()
		back := FromHSV(h, s, v)
		// one unit of rounding slack per channel
		assert.InDelta(t, c.R, back.R, 1, "R of %s", hex)
		assert.InDelta(t, c.G, back.G, 1, "G of %s", hex)
		assert.InDelta(t, c.B, back.B, 1, "B of %s", hex)
	}
}

func TestHSLRoundtrip(t *testing.T) {
	for _, hex := range []string{"#FF0000", "#808080", "#C0FFEE", "#013370"} {
		c, err := ParseHex(hex)
		require.NoError(t, err)
		h, l, s := c.HSL()
		back := FromHSL(h, l, s)
		assert.InDelta(t, c.R, back.R, 1, "R of %s", hex)
		assert.InDelta(t, c.G, back.G, 1, "G of %s", hex)
		assert.InDelta(t, c.B, back.B, 1, "B of %s", hex)
	}
}

func TestContrasteBlancoNegro(t *testing.T) {
	ratio, err := Contraste("#000000", "#FFFFFF")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 0.01)

	// symmetric
	inverso, err := Contraste("#FFFFFF", "#000000")
	require.NoError(t, err)
	assert.Equal(t, ratio, inverso)
}

func TestContrasteMismoColor(t *testing.T) {
	ratio, err := Contraste("#3366AA", "#3366AA")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ratio, 0.001)
}

func TestContrasteHexInvalido(t *testing.T) {
	_, err := Contraste("#000000", "nope")
	assert.ErrorIs(t, err, ErrHexInvalido)
}

func TestEsClaro(t *testing.T) {
	claro, err := EsClaro("#FFFFFF")
	require.NoError(t, err)
	assert.True(t, claro)

	oscuro, err := EsClaro("#1A1A2E")
	require.NoError(t, err)
	assert.False(t, oscuro)
}

func TestColorTextoSugerido(t *testing.T) {
	texto, err := ColorTextoSugerido("#FFFF00") // amarillo claro
	require.NoError(t, err)
	assert.Equal(t, "#000000", texto)

	texto, err = ColorTextoSugerido("#202020")
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF", texto)
}

func TestColorAsaAutomatico(t *testing.T) {
	asa, err := ColorAsaAutomatico("#F5F5DC") // cuerpo beige claro
	require.NoError(t, err)
	assert.Equal(t, "#000000", asa)

	asa, err = ColorAsaAutomatico("#2C1810") // cuerpo marron oscuro
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF", asa)

	_, err = ColorAsaAutomatico("gris")
	assert.ErrorIs(t, err, ErrHexInvalido)
}
