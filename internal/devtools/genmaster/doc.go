// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Genmaster draws a placeholder master image to generate an icon set
from.

# Usage

	$ go tool genmaster [flags] [output]

Genmaster writes simple geometric placeholder artwork, usable as an
iconset master while the real artwork doesn't exist yet, to output
(AppIcon.png by default). Run it from the repository root.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
