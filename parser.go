package symbler

import "log/slog"

// Parse interprets input as a symbol program and returns the resulting
// graph.
//
// Decoding and execution are interleaved: the width of a vertex reference
// depends on how many keyed vertices exist when its command is read, so
// each command runs before the next one is decoded. Parsing stops at the
// first opcode or argument that the input cannot complete; the commands
// decoded up to that point form the result. Parse never fails.
func Parse(input string, opts ...Option) *Symbol {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.form != nil {
		input = o.form.String(input)
	}

	s := newSymbol(o)
	cur := NewCursor(input)
	raw := make([]int, 0, 8)
	for !cur.Done() {
		n, _ := cur.Next()
		op := OpcodeFromNibble(n)
		keys := s.KeyCount()
		width := op.ArgWidth(keys)
		if cap(raw) < width {
			raw = make([]int, width)
		}
		raw = raw[:width]
		if !cur.Read(raw) {
			Logger().Debug("symbler: truncated command",
				slog.String("op", op.String()), slog.Int("pos", cur.Pos()))
			break
		}
		s.execute(decodeCommand(op, raw, keys))
	}

	Logger().Info("symbler: parse finished",
		slog.Int("commands", len(s.history)),
		slog.Int("vertices", len(s.vertices)),
		slog.Int("keys", len(s.keys)),
		slog.Int("edges", len(s.edges)))
	return s
}
