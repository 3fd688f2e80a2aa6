package corpus

import "embed"

// dataFS contains the collection JSON files embedded at compile time.
//
//go:embed data/*.json
var dataFS embed.FS
