// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package iconset

import (
	"encoding/json"
	"os"
)

// manifestName is the name of the manifest file within the asset catalog
// directory.
const manifestName = "Contents.json"

// Contents is the manifest describing the generated images to the Xcode
// asset catalog compiler, serialized as Contents.json.
type Contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// Image is a single manifest entry describing one generated image.
type Image struct {
	Size     string `json:"size"`
	Idiom    string `json:"idiom"`
	Filename string `json:"filename"`
	Scale    string `json:"scale"`
}

// Info is the fixed manifest metadata expected by Xcode.
type Info struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// newContents returns a manifest with no images yet. The images slice is
// non-nil so that it serializes as an empty array, not null, even when
// every target failed.
func newContents() *Contents {
	return &Contents{
		Images: make([]Image, 0, len(Targets)),
		Info:   Info{Version: 1, Author: "xcode"},
	}
}

// manifestImage builds the manifest entry for a target.
func manifestImage(t Target) Image {
	return Image{
		Size:     t.sizeString(),
		Idiom:    t.Idiom,
		Filename: t.Filename(),
		Scale:    t.scaleString(),
	}
}

// writeManifest serializes the manifest with 2-space indentation and a
// trailing newline, overwriting whatever is at path.
func writeManifest(path string, c *Contents) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o644)
}
