package specdoc

import _ "embed"

// Version is the released version of specdoc.
//
//go:embed VERSION
var Version string
