package main

import "embed"

// Sample sheets shown when the viewer runs without -config or -library.
//
//go:embed all:assets
var assetsFS embed.FS
