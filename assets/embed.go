package assets

import "embed"

// AssetsFS holds the stylesheet, the boot script and the client bundle.
// Run "go run ./cmd/do build wasm" to build wasm/client.wasm and copy
// js/wasm_exec.js from the Go distribution.
//
//go:embed css js all:wasm
var AssetsFS embed.FS
