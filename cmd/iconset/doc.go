// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Iconset generates an iOS app icon set from a single master image.

# Usage

	$ iconset [flags] [dir]

Iconset looks for the master image (AppIcon.png by default) in the
asset catalog directory dir, the current directory if not provided,
normalizes it in place to 1024x1024, renders every icon size required
by iPhone, iPad and the App Store next to it, and writes the
Contents.json manifest describing them.

A master image ending in .svg is rasterized to a sibling PNG before
generation.

Scaling is done with sips (macOS) or ImageMagick when one of them is
installed, falling back to a built-in pure Go scaler; pick a backend
explicitly with -resizer. A size that fails to generate is reported and
skipped, the remaining ones and the manifest are still written, and
iconset exits with a non-zero status.

With -watch, iconset keeps running and regenerates the set every time
the master image changes.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
