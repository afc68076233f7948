// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/iconset"
)

func main() { cli.Main(new(app)) }

type app struct {
	master  string
	resizer string
	watch   bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.master, "master", "AppIcon.png", "Master image `name` inside the asset catalog directory.")
	fs.StringVar(&a.resizer, "resizer", "auto", "Resizer `backend` to use: auto, sips, magick or native.")
	fs.BoolVar(&a.watch, "watch", false, "Regenerate the icon set whenever the master image changes.")
}

func (a *app) Run(ctx context.Context) error {
	dir := "."
	if args := flag.Args(); len(args) > 0 {
		if len(args) > 1 {
			return fmt.Errorf("%w: expected at most one directory argument", cli.ErrInvalidArgs)
		}
		dir = args[0]
	}

	r, err := iconset.ResizerByName(a.resizer)
	if err != nil {
		return err
	}
	c := &iconset.Config{
		Dir:     dir,
		Master:  a.master,
		Resizer: r,
	}

	if a.watch {
		return iconset.Watch(ctx, c)
	}

	rep, err := iconset.Generate(ctx, c)
	if err != nil {
		return err
	}
	if failed := rep.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d icons failed to generate", len(failed), len(rep.Results))
	}
	return nil
}
