// Package pkg provides the core libraries for gridtable text table rendering.
//
// # Overview
//
// Gridtable renders tabular data as framed text tables. The pkg directory
// is organized into:
//
//  1. [grid] - The layout engine: span topology, border resolution,
//     dimension estimation, and highlight outlining
//  2. [render] - The text painter that turns records and a grid
//     configuration into framed output
//  3. [table] - The high-level builder API, border styles, themes, and the
//     CSV/JSON adapters
//  4. [cache] - Render-result caching for the HTTP service
//  5. [errors] - Structured errors shared by the CLI and the service
//
// # Architecture
//
// The typical data flow:
//
//	CSV/JSON input
//	         ↓
//	    [table] package (adapt input, collect settings)
//	         ↓
//	    [grid] package (spans, borders, dimensions)
//	         ↓
//	    [render] package (paint lines)
//	         ↓
//	    framed text output
package pkg
