package client

import _ "embed"

//go:embed assets/version.txt
var Version string
