// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package iconset

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// Resizer scales one image file into another.
//
// Implementations block until dst is fully written, overwriting whatever
// was there. dst may equal src for in-place scaling. No cleanup of
// partial output is performed on failure.
type Resizer interface {
	Resize(ctx context.Context, src, dst string, w, h int) error
}

// Names of the built-in resizer backends accepted by [ResizerByName].
const (
	BackendAuto   = "auto"
	BackendSips   = "sips"
	BackendMagick = "magick"
	BackendNative = "native"
)

// DetectResizer returns the best available [Resizer]: sips if present,
// then ImageMagick, falling back to the pure Go implementation that is
// always available.
func DetectResizer() Resizer {
	if _, err := exec.LookPath("sips"); err == nil {
		return SipsResizer{}
	}
	if _, err := exec.LookPath("magick"); err == nil {
		return MagickResizer{}
	}
	return NativeResizer{}
}

// ResizerByName returns the [Resizer] for a backend name. An external
// backend requested by name must be installed, unlike with [BackendAuto],
// where missing tools are skipped over.
func ResizerByName(name string) (Resizer, error) {
	switch name {
	case BackendAuto:
		return DetectResizer(), nil
	case BackendSips:
		if _, err := exec.LookPath("sips"); err != nil {
			return nil, errors.New("sips not found (it ships with macOS only)")
		}
		return SipsResizer{}, nil
	case BackendMagick:
		if _, err := exec.LookPath("magick"); err != nil {
			return nil, errors.New("ImageMagick (magick command) not found")
		}
		return MagickResizer{}, nil
	case BackendNative:
		return NativeResizer{}, nil
	}
	return nil, fmt.Errorf("unknown resizer %q", name)
}

// SipsResizer resizes images with the sips command that ships with
// macOS.
type SipsResizer struct{}

// Resize implements the [Resizer] interface.
func (SipsResizer) Resize(ctx context.Context, src, dst string, w, h int) error {
	return runResize(ctx, "sips", sipsArgs(src, dst, w, h))
}

// sips -z takes height before width.
func sipsArgs(src, dst string, w, h int) []string {
	return []string{"-z", strconv.Itoa(h), strconv.Itoa(w), src, "--out", dst}
}

// MagickResizer resizes images with ImageMagick (the magick command).
type MagickResizer struct{}

// Resize implements the [Resizer] interface.
func (MagickResizer) Resize(ctx context.Context, src, dst string, w, h int) error {
	return runResize(ctx, "magick", magickArgs(src, dst, w, h))
}

// The ! flag forces the exact geometry regardless of the aspect ratio,
// matching what sips -z does.
func magickArgs(src, dst string, w, h int) []string {
	return []string{src, "-resize", fmt.Sprintf("%dx%d!", w, h), dst}
}

func runResize(ctx context.Context, name string, args []string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s: %w\n%s", name, err, out)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// ResizeError describes a failed resize of a single image.
type ResizeError struct {
	Src string // source image path
	Dst string // destination image path
	Err error  // underlying error
}

func (e *ResizeError) Error() string {
	return fmt.Sprintf("failed to resize %s to %s: %v", e.Src, e.Dst, e.Err)
}

func (e *ResizeError) Unwrap() error { return e.Err }
