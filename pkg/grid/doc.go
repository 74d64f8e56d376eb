// Package grid implements the layout engine behind gridtable's framed text
// tables.
//
// # Overview
//
// The engine is split into four cooperating parts:
//
//  1. Topology: pure queries over the declared span map and grid shape
//     (is a cell visible, is a span valid, does a border line exist).
//  2. Border resolution: for any cell, decide the glyph drawn on each of
//     its 4 edges and 4 corners by walking a layered override chain.
//  3. Dimension estimation: compute per-column widths and per-row heights
//     from cell content, padding, and spans.
//  4. Outlining: synthesize per-cell border overrides that frame an
//     arbitrary set of highlighted cells as closed regions.
//
// All of it is pure in-memory computation: no I/O, no goroutines, no error
// returns. Malformed input (out-of-range spans, positions outside the grid)
// degrades silently instead of failing, so a renderer never has to handle
// partial results.
//
// # Border layers
//
// A [Config] holds four layers of border state, highest precedence first:
//
//  1. Per-cell overrides set with [Config.SetBorder] (and produced by
//     [Outline]).
//  2. Per-line overrides set with [Config.SetHorizontalLine] and
//     [Config.SetVerticalLine].
//  3. The global frame/split set, [Borders].
//  4. A single fallback glyph filling any border position that exists but
//     has no specific glyph.
//
// [Config.Resolve] walks this chain independently for every facet of a cell,
// so one cell may take its top edge from the fallback while its left edge
// comes from a vertical line override.
//
// # Typical use
//
//	cfg := grid.NewConfig()
//	cfg.SetBorders(grid.Borders{...})
//	widths, heights := grid.Estimate(records, cfg)
//	b := cfg.Resolve(grid.Pos(0, 0), shape)
//
// Widths and heights are valid only for the exact records and configuration
// they were computed from; recompute them after any change.
package grid
