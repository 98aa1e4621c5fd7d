package folio

import "embed"

// EmbeddedAssets holds the theme shipped with every site: theme.css and
// favicon.svg.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
