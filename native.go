// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package iconset

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// NativeResizer resizes images in process, without external tools.
//
// PNG and JPEG sources are supported. Scaling produces exactly w by h
// pixels regardless of the source aspect ratio, like sips -z does. The
// output format follows the destination extension: JPEG for .jpg and
// .jpeg, PNG for everything else.
type NativeResizer struct{}

// Resize implements the [Resizer] interface.
func (NativeResizer) Resize(ctx context.Context, src, dst string, w, h int) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(dst)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, scaled, nil)
	default:
		err = png.Encode(&buf, scaled)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dst, buf.Bytes(), 0o644)
}
