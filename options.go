package symbler

import "golang.org/x/text/unicode/norm"

// DefaultPathBudget bounds the number of edges a single path search may
// visit.
const DefaultPathBudget = 1 << 20

// Option configures a Parse call.
//
// Example:
//
//	sym := symbler.Parse(input, symbler.WithNormalization(norm.NFC))
type Option func(*parseOptions)

type parseOptions struct {
	form       *norm.Form
	pathBudget int
}

func defaultParseOptions() parseOptions {
	return parseOptions{pathBudget: DefaultPathBudget}
}

// WithNormalization normalizes the input to the given Unicode form before
// decoding. Composed and decomposed spellings of the same text then decode
// to the same nibble stream.
func WithNormalization(f norm.Form) Option {
	return func(o *parseOptions) {
		o.form = &f
	}
}

// WithPathBudget limits how many edges a sever path search may visit before
// giving up. Values <= 0 select DefaultPathBudget.
func WithPathBudget(n int) Option {
	return func(o *parseOptions) {
		if n <= 0 {
			n = DefaultPathBudget
		}
		o.pathBudget = n
	}
}
