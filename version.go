package piratemap

import _ "embed"

// Version is the release of the decoder, read from the VERSION file.
//
//go:embed VERSION
var Version string
