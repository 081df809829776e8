// Command fstridemo renders fullscreen triangle passes to PNG images.
//
// It renders on the CPU rasterizer by default. Build with the gpu example
// under examples/gpu for accelerator-backed rendering.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/fstri"
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "fstri.png", "output file")
		encoding = flag.String("encoding", "bitshift", "vertex encoding: bitshift or shiftmask")
		payload  = flag.String("payload", "", "payload: clip-position or coord-gradient (default: paired with encoding)")
		scale    = flag.Int("scale", 1, "integer upscale factor for the saved image")
	)
	flag.Parse()

	enc, err := parseEncoding(*encoding)
	if err != nil {
		log.Fatal(err)
	}

	pass := fstri.NewPass(enc)
	if *payload != "" {
		p, err := parsePayload(*payload)
		if err != nil {
			log.Fatal(err)
		}
		pass.Payload = p
	}

	img := pass.Image(*width, *height)

	if *scale > 1 {
		img = upscale(img, *scale)
	}

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	b := img.Bounds()
	log.Printf("Pass saved to %s (%dx%d, %s/%s)\n",
		*output, b.Dx(), b.Dy(), pass.Encoding, pass.Payload)
}

func parseEncoding(name string) (fstri.Encoding, error) {
	switch strings.ToLower(name) {
	case "bitshift":
		return fstri.EncodingBitShift, nil
	case "shiftmask":
		return fstri.EncodingShiftMask, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q (want bitshift or shiftmask)", name)
	}
}

func parsePayload(name string) (fstri.Payload, error) {
	switch strings.ToLower(name) {
	case "clip-position":
		return fstri.PayloadClipPosition, nil
	case "coord-gradient":
		return fstri.PayloadCoordGradient, nil
	default:
		return 0, fmt.Errorf("unknown payload %q (want clip-position or coord-gradient)", name)
	}
}

// upscale enlarges the image with high-quality Catmull-Rom resampling.
func upscale(img *image.RGBA, factor int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}
