package pnc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type wrapopt bool

// parsectx holds settings for one parse.
type parsectx struct {
	// wrap indicates that a bare token sequence is wrapped in parentheses
	// before parsing.
	wrap bool
}

// AutoWrap tells the parser to read a program that is not already one
// parenthesized list as if it were, so that "+ 1 2" means "(+ 1 2)". A lone
// atom is never wrapped.
func AutoWrap() ParseOption {
	return wrapopt(true)
}

func (o wrapopt) parseOption(p parsectx) parsectx {
	p.wrap = bool(o)
	return p
}
