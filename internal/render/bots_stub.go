//go:build !ebiten

// The headless build carries no renderer; the package exists so both build
// flavours share one import graph.
package render
