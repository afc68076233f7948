// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package iconset generates an iOS app icon set from a single master
image.

An icon set is a directory in an Xcode asset catalog (usually named
AppIcon.appiconset) holding one PNG per icon variant required by
iPhone, iPad and the App Store, plus a Contents.json manifest
describing them. [Generate] renders all variants listed in [Targets]
from the master image and writes the manifest:

	rep, err := iconset.Generate(ctx, &iconset.Config{
		Dir: "Assets.xcassets/AppIcon.appiconset",
	})

Scaling is delegated to a [Resizer]: sips on macOS, ImageMagick, or a
pure Go fallback, picked automatically unless [Config.Resizer] is set.
A failed variant is skipped and reported in the [Report]; the rest of
the set and the manifest are still written.
*/
package iconset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"go.astrophena.name/base/logger"
)

// canonicalSize is the resolution the master image is normalized to
// before any derivative is generated. It equals the largest generated
// variant, the App Store marketing icon.
const canonicalSize = 1024

// ErrMasterNotFound is returned by [Generate] when the master image
// doesn't exist.
var ErrMasterNotFound = errors.New("master image not found")

// Config represents a generation configuration.
type Config struct {
	// Dir is the asset catalog directory where the master image lives
	// and the generated images and manifest are written. If empty, uses
	// the current directory.
	Dir string
	// Master is the file name of the master image inside Dir. If empty,
	// AppIcon.png is used. A master with the .svg extension is
	// rasterized to a sibling PNG before generation.
	Master string
	// Resizer scales the images. If nil, picked with [DetectResizer].
	Resizer Resizer
	// Logf is a logger to use. If nil, log.Printf is used.
	Logf logger.Logf
}

func (c *Config) setDefaults() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.Master == "" {
		c.Master = "AppIcon.png"
	}
	if c.Resizer == nil {
		c.Resizer = DetectResizer()
	}
	if c.Logf == nil {
		c.Logf = logger.Logf(log.Printf)
	}
}

// Result describes the outcome of a single [Target].
type Result struct {
	Target   Target
	Filename string // base name of the generated image
	Px       int    // pixel dimension of both axes
	Err      error  // nil on success, a *ResizeError otherwise
}

// Report describes a completed [Generate] run.
//
// A run that fails its precondition (the master image is missing or
// unreadable) produces no Report at all. Everything else, including
// runs where every single target failed, produces one.
type Report struct {
	// Results holds the outcome of every target, in [Targets] order.
	Results []Result
	// NormalizeErr is the error from normalizing the master image in
	// place, or nil. A failed normalization doesn't halt the run.
	NormalizeErr error
	// ManifestPath is the path of the written manifest.
	ManifestPath string
}

// Failed returns the results of targets that failed to generate.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Generate renders every [Target] from the master image into the asset
// catalog directory and writes the manifest describing the successfully
// generated ones.
//
// The master is first normalized in place to 1024x1024; a failure there
// is recorded in the Report and doesn't halt the run. A failed target
// is logged, gets no manifest entry and doesn't halt the run either:
// the caller decides from the Report whether partial success is fatal.
// Whatever a failed resize left at its output path stays there.
//
// Generate returns an error only for run-level failures: the master
// image is missing ([ErrMasterNotFound]) or can't be prepared, or the
// manifest can't be written. Per-target failures never become the error
// return.
func Generate(ctx context.Context, c *Config) (*Report, error) {
	if c == nil {
		c = &Config{}
	}
	c.setDefaults()

	master := filepath.Join(c.Dir, c.Master)
	if _, err := os.Stat(master); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", master, ErrMasterNotFound)
	} else if err != nil {
		return nil, err
	}
	if isSVG(master) {
		var err error
		if master, err = rasterizeSVG(master); err != nil {
			return nil, err
		}
		c.Logf("Rasterized %s to %s.", filepath.Join(c.Dir, c.Master), master)
	}

	rep := &Report{ManifestPath: filepath.Join(c.Dir, manifestName)}

	// Normalize the master to the canonical resolution so that every
	// derivative is scaled down from the same source.
	if err := c.Resizer.Resize(ctx, master, master, canonicalSize, canonicalSize); err != nil {
		rep.NormalizeErr = &ResizeError{Src: master, Dst: master, Err: err}
		c.Logf("Failed to normalize %s to %dx%d: %v", master, canonicalSize, canonicalSize, err)
	}

	contents := newContents()
	for _, t := range Targets {
		res := Result{Target: t, Filename: t.Filename(), Px: t.Px()}
		dst := filepath.Join(c.Dir, t.Filename())
		if err := c.Resizer.Resize(ctx, master, dst, t.Px(), t.Px()); err != nil {
			res.Err = &ResizeError{Src: master, Dst: dst, Err: err}
			c.Logf("Failed to resize %s to %s: %v", master, dst, err)
		} else {
			contents.Images = append(contents.Images, manifestImage(t))
		}
		rep.Results = append(rep.Results, res)
	}

	if err := writeManifest(rep.ManifestPath, contents); err != nil {
		return rep, err
	}
	c.Logf("Generated %d of %d icons and %s in %s.", len(contents.Images), len(Targets), manifestName, c.Dir)
	return rep, nil
}
