package primitives

import (
	"github.com/anthonynsimon/bild/imgio"
	rl "github.com/gen2brain/raylib-go/raylib"

	"ar-campus/internal/primitives/fit"
)

// loadTexture decodes the image at path, resizes it to power-of-two dimensions so it can
// be mipmapped and tiled, and uploads it. A zero texture is returned when the file cannot
// be read or decoded.
func loadTexture(path string) rl.Texture2D {
	img, err := imgio.Open(path)
	if err != nil {
		return rl.Texture2D{}
	}
	rimg := rl.NewImageFromImage(fit.PowerOfTwo(img))
	tex := rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
	if rl.IsTextureValid(tex) {
		rl.GenTextureMipmaps(&tex)
		rl.SetTextureFilter(tex, rl.FilterTrilinear)
		rl.SetTextureWrap(tex, rl.WrapRepeat)
	}
	return tex
}
