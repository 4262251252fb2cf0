package icon

import (
	"image"
	"image/png"
	"os"
)

// Filename is the fixed output artifact name, created in the working
// directory of the invocation.
const Filename = "AppIcon.png"

// WriteFile encodes img as PNG at path, truncating any existing file.
// The canvas is fully opaque, so the encoder emits 8-bit truecolor with no
// alpha channel.
func WriteFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
