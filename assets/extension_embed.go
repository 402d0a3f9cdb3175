package assets

import _ "embed"

// Static extension-host resources embedded at compile time

//go:embed css/infobar.css
var InfobarCSS string
