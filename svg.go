// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package iconset

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// isSVG reports whether path names an SVG file.
func isSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// rasterizeSVG renders an SVG master into a sibling PNG at the canonical
// resolution and returns the PNG's path. The SVG itself is left
// untouched, so watch mode keeps working from it.
func rasterizeSVG(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	icon.SetTarget(0, 0, canonicalSize, canonicalSize)
	rgba := image.NewRGBA(image.Rect(0, 0, canonicalSize, canonicalSize))
	scanner := rasterx.NewScannerGV(canonicalSize, canonicalSize, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(canonicalSize, canonicalSize, scanner), 1)

	dst := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if err := png.Encode(out, rgba); err != nil {
		out.Close()
		return "", err
	}
	return dst, out.Close()
}
