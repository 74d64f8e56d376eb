package grid

// segment is one maximal 4-connected component of the target set.
type segment map[Position]struct{}

// Outline clusters targets into maximal 4-connected regions and synthesizes
// a per-cell border for every cell so that each region renders as a single
// closed outline: no doubled borders along shared internal edges, no gaps at
// L- or T-shaped junctions, and deterministic glyph choices where two parts
// of a region meet diagonally.
//
// The returned map is meant to be installed as per-cell overrides with
// Config.SetBorder. Duplicate target positions are tolerated.
func Outline(targets []Position, border Border) map[Position]Border {
	out := make(map[Position]Border, len(targets))
	for _, seg := range clusters(targets) {
		for pos := range seg {
			out[pos] = outlineCell(seg, pos, border)
		}
	}
	return out
}

// clusters partitions targets into maximal connected components under
// 4-adjacency (row±1 same col, or col±1 same row), growing each component
// with a worklist until no member has an unassigned neighbor.
func clusters(targets []Position) []segment {
	members := make(map[Position]struct{}, len(targets))
	for _, p := range targets {
		members[p] = struct{}{}
	}

	assigned := make(map[Position]struct{}, len(members))
	var segs []segment
	for _, p := range targets {
		if _, done := assigned[p]; done {
			continue
		}
		seg := segment{}
		work := []Position{p}
		assigned[p] = struct{}{}
		for len(work) > 0 {
			cur := work[len(work)-1]
			work = work[:len(work)-1]
			seg[cur] = struct{}{}
			for _, next := range [4]Position{
				{cur.Row - 1, cur.Col},
				{cur.Row + 1, cur.Col},
				{cur.Row, cur.Col - 1},
				{cur.Row, cur.Col + 1},
			} {
				if _, in := members[next]; !in {
					continue
				}
				if _, done := assigned[next]; done {
					continue
				}
				assigned[next] = struct{}{}
				work = append(work, next)
			}
		}
		segs = append(segs, seg)
	}
	return segs
}

// outlineCell builds the border override for one cell of a segment. An edge
// is drawn exactly when the neighbor across it is outside the segment.
// Corners need the full 8-neighbor case analysis; see cornerGlyph.
func outlineCell(seg segment, pos Position, spec Border) Border {
	in := func(dr, dc int) bool {
		_, ok := seg[Pos(pos.Row+dr, pos.Col+dc)]
		return ok
	}
	top, bottom := !in(-1, 0), !in(1, 0)
	left, right := !in(0, -1), !in(0, 1)

	var b Border
	if top {
		b.Top = spec.Top
	}
	if bottom {
		b.Bottom = spec.Bottom
	}
	if left {
		b.Left = spec.Left
	}
	if right {
		b.Right = spec.Right
	}

	b.TopLeft = cornerGlyph(top, left, in(-1, -1), corner{
		own: spec.TopLeft, opposite: spec.BottomRight,
		alongEdge: spec.Top, alongSide: spec.Left,
		turnEdge: spec.BottomLeft, turnSide: spec.TopRight,
	})
	b.TopRight = cornerGlyph(top, right, in(-1, 1), corner{
		own: spec.TopRight, opposite: spec.BottomLeft,
		alongEdge: spec.Top, alongSide: spec.Right,
		turnEdge: spec.BottomRight, turnSide: spec.TopLeft,
	})
	b.BottomLeft = cornerGlyph(bottom, left, in(1, -1), corner{
		own: spec.BottomLeft, opposite: spec.TopRight,
		alongEdge: spec.Bottom, alongSide: spec.Left,
		turnEdge: spec.TopLeft, turnSide: spec.BottomRight,
	})
	b.BottomRight = cornerGlyph(bottom, right, in(1, 1), corner{
		own: spec.BottomRight, opposite: spec.TopLeft,
		alongEdge: spec.Bottom, alongSide: spec.Right,
		turnEdge: spec.TopRight, turnSide: spec.BottomLeft,
	})
	return b
}

// corner carries the candidate glyphs for one corner facet: the corner's own
// glyph, the diagonally opposite one, the two edge glyphs for straight
// continuations, and the two corners used when the outline turns into a
// diagonal neighbor. The assignments in outlineCell make the rule identical
// under all four rotations.
type corner struct {
	own, opposite        rune
	alongEdge, alongSide rune
	turnEdge, turnSide   rune
}

// cornerGlyph picks the glyph for a corner facet. edge and side report
// whether the two edges meeting at this corner are drawn (the horizontal
// one first); diag reports whether the diagonal neighbor belongs to the
// same segment.
//
//   - Both edges drawn: a convex corner. If the diagonal neighbor is
//     present the regions touch at a point and the opposite corner glyph
//     bridges the junction.
//   - One edge drawn, diagonal absent: the boundary runs straight through
//     the junction, so the edge's own glyph fills the corner slot.
//   - One edge drawn, diagonal present: the boundary turns into the
//     diagonal cell's perpendicular edge; the matching turn corner joins
//     them.
//   - No edge drawn, diagonal absent: a concave inner corner (the segment
//     wraps around a missing diagonal cell), closed with the opposite
//     corner glyph.
//   - No edge drawn, diagonal present: an interior junction, nothing drawn.
func cornerGlyph(edge, side, diag bool, g corner) rune {
	switch {
	case edge && side:
		if diag {
			return g.opposite
		}
		return g.own
	case edge:
		if diag {
			return g.turnEdge
		}
		return g.alongEdge
	case side:
		if diag {
			return g.turnSide
		}
		return g.alongSide
	default:
		if diag {
			return 0
		}
		return g.opposite
	}
}
