package service

import "hash/fnv"

// The original UI sampled poster pixels for its background gradient. Pixel
// work stays in the browser; the core just needs a stable, poster-dependent
// theme value, so the gradient is picked from a fixed palette by hash.
var gradientPalette = []string{
	"linear-gradient(135deg, #1a1a2e 0%, #16213e 50%, #0f3460 100%)",
	"linear-gradient(135deg, #2d132c 0%, #801336 50%, #c72c41 100%)",
	"linear-gradient(135deg, #0f2027 0%, #203a43 50%, #2c5364 100%)",
	"linear-gradient(135deg, #232526 0%, #414345 100%)",
	"linear-gradient(135deg, #1f1c2c 0%, #928dab 100%)",
	"linear-gradient(135deg, #141e30 0%, #243b55 100%)",
	"linear-gradient(135deg, #3e1e68 0%, #5d2f77 50%, #e45a84 100%)",
	"linear-gradient(135deg, #000428 0%, #004e92 100%)",
}

// DefaultTheme is shown before the first question loads.
const DefaultTheme = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"

// ThemeForImage derives a deterministic background gradient from a poster URL.
func ThemeForImage(imageURL string) string {
	if imageURL == "" {
		return DefaultTheme
	}
	h := fnv.New32a()
	h.Write([]byte(imageURL))
	return gradientPalette[h.Sum32()%uint32(len(gradientPalette))]
}
