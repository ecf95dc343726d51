// Package symbler draws vector symbols from short strings.
//
// # Overview
//
// A symbol program is a stream of nibbles. Every UTF-16 code unit of the
// input contributes one nibble: 0-9 and a-f stand for themselves, spaces and
// tabs are skipped, and any other unit contributes its value modulo 16. A
// character outside the Basic Multilingual Plane is a surrogate pair and
// contributes two nibbles.
// Any string is therefore a valid program, and the same string always
// produces the same symbol.
//
// # Quick Start
//
//	cv, err := symbler.DrawString("342 142 4c24 02 4c18 4008 00 182 304")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cv.Close()
//	cv.SavePNG("symbol.png")
//
// # Commands
//
// Each command is an opcode nibble (taken modulo 14) followed by its
// arguments:
//
//	0 SEL v       select keyed vertex v
//	1 ADD a d     add a keyed vertex at angle a, distance d from the selection
//	2 CON v w     connect keyed vertices v and w
//	3 LIN a d     ADD, then connect the previous selection to the new vertex
//	4 ARC a d h   arc of radius d around the selection from a-h to a+h;
//	              d = 0 leaves a dot
//	5 FIL a       reserved
//	6 CUT v w     remove the edges of a path between v and w
//	7 MEM         push a bookmark
//	8 FRG         pop a bookmark
//	9 CPY a d r s reserved
//	a MIR a d r s reserved
//	b DIR n       angle step = π/n
//	c CLR r g b   stroke color #rrggbb
//	d DST n       distance step = n
//
// A vertex reference is max(ceil(log16(k)), 1) nibbles wide, where k is the
// number of keyed vertices when the command is read. The command stream can
// therefore only be decoded by running it.
//
// # Geometry
//
// Points closer than Epsilon are merged into one vertex. When a new segment
// crosses existing edges, a keyed vertex is placed at every crossing and
// both the segment and the crossed edges are split there, so the graph stays
// planar.
//
// # Rendering
//
// Symbol.Lines flattens the graph, Normalize fits it into a square with the
// y axis pointing down, and Render strokes it onto any Surface. Canvas is a
// Surface backed by github.com/gogpu/gg.
//
// LineCache memoizes parsed lines for callers that render the same programs
// repeatedly; pass it to DrawString with WithLineCache.
package symbler
