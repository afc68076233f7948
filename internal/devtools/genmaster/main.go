// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/unwrap"

	"github.com/fogleman/gg"
)

func main() { cli.Main(new(app)) }

type app struct {
	size int
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.IntVar(&a.size, "size", 1024, "Size of the generated image in pixels.")
}

func (a *app) Run(ctx context.Context) error {
	ensureRoot()

	out := "AppIcon.png"
	if len(flag.Args()) > 0 {
		out = flag.Args()[0]
	}
	if a.size <= 0 {
		return errors.New("size must be positive")
	}
	return drawMaster(a.size, out)
}

// drawMaster renders simple placeholder artwork: a ring on a rounded
// square.
func drawMaster(size int, out string) error {
	s := float64(size)
	dc := gg.NewContext(size, size)

	dc.SetRGB(0.13, 0.38, 0.82)
	dc.Clear()

	dc.SetRGB(0.09, 0.28, 0.65)
	dc.DrawRoundedRectangle(s*0.08, s*0.08, s*0.84, s*0.84, s*0.19)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(s*0.5, s*0.5, s*0.27)
	dc.Fill()

	dc.SetRGB(0.09, 0.28, 0.65)
	dc.DrawCircle(s*0.5, s*0.5, s*0.17)
	dc.Fill()

	return dc.SavePNG(out)
}

// ensureRoot checks that the current working directory is at the
// repository root and panics if it doesn't.
func ensureRoot() {
	wd := unwrap.Value(os.Getwd())
	if _, err := os.Stat(filepath.Join(wd, ".git")); os.IsNotExist(err) {
		panic("Are you at repo root?")
	} else if err != nil {
		panic(err)
	}
}
