package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeForImage(t *testing.T) {
	assert.Equal(t, DefaultTheme, ThemeForImage(""))

	theme := ThemeForImage("https://image.example.com/w500/a.jpg")
	assert.Contains(t, theme, "linear-gradient")
	// Deterministic for the same poster.
	assert.Equal(t, theme, ThemeForImage("https://image.example.com/w500/a.jpg"))
}
