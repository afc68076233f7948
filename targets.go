// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package iconset

import "strconv"

// Target describes a single icon variant of the generated set.
type Target struct {
	// Suffix distinguishes the variant and forms the name of the
	// generated file, e.g. "60x60@2x" or "83.5x83.5@2x~ipad".
	Suffix string
	// Size is the logical icon size in points.
	Size float64
	// Scale is the device pixel density multiplier.
	Scale int
	// Idiom is the device family the variant targets.
	Idiom string
}

// Targets is the fixed list of icon variants required by iPhone, iPad
// and the App Store, in the order their manifest entries are written.
var Targets = []Target{
	{"20x20@2x", 20, 2, "iphone"},
	{"20x20@3x", 20, 3, "iphone"},
	{"29x29@2x", 29, 2, "iphone"},
	{"29x29@3x", 29, 3, "iphone"},
	{"40x40@2x", 40, 2, "iphone"},
	{"40x40@3x", 40, 3, "iphone"},
	{"60x60@2x", 60, 2, "iphone"},
	{"60x60@3x", 60, 3, "iphone"},
	{"20x20~ipad", 20, 1, "ipad"},
	{"20x20@2x~ipad", 20, 2, "ipad"},
	{"29x29~ipad", 29, 1, "ipad"},
	{"29x29@2x~ipad", 29, 2, "ipad"},
	{"40x40~ipad", 40, 1, "ipad"},
	{"40x40@2x~ipad", 40, 2, "ipad"},
	{"76x76~ipad", 76, 1, "ipad"},
	{"76x76@2x~ipad", 76, 2, "ipad"},
	{"83.5x83.5@2x~ipad", 83.5, 2, "ipad"},
	{"1024x1024", 1024, 1, "ios-marketing"},
}

// Px returns the pixel dimension of both axes of the generated image.
// The product of size and scale is truncated, not rounded: 83.5 points
// at 2x is exactly 167.
func (t Target) Px() int { return int(t.Size * float64(t.Scale)) }

// Filename returns the name of the generated image file.
func (t Target) Filename() string { return "Icon-" + t.Suffix + ".png" }

// sizeString formats the logical size for the manifest: "60x60" for
// integral sizes, "83.5x83.5" for the single half-point one.
func (t Target) sizeString() string {
	s := strconv.FormatFloat(t.Size, 'f', -1, 64)
	return s + "x" + s
}

func (t Target) scaleString() string { return strconv.Itoa(t.Scale) + "x" }
