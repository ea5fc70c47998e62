package dice

import "strings"

// Option configures a Parser.
type Option func(*Parser)

// WithMaxRepeat caps N in "NxDice". Zero means no cap.
func WithMaxRepeat(n int) Option {
	return func(p *Parser) { p.maxRepeat = n }
}

// WithMaxDice caps the die count of a single atom such as "40d6". Zero means no cap.
func WithMaxDice(n int) Option {
	return func(p *Parser) { p.maxDice = n }
}

// Parser turns dice notation into roll specifications.
//
// The accepted grammar is:
//
//	RollList  := Term (";" Term)*
//	Term      := [ Int "x" ] DiceExpr
//	DiceExpr  := DiceAtom ( "&" DiceAtom )*
//	DiceAtom  := [ Int ] "d" Int [ SignedInt ]
//	SignedInt := ( "+" | "-" ) Int
//
// A modifier with no sign is read as positive, so "d6 5" is "1d6+5".
// Input is matched case-insensitively and whitespace may appear between any
// two tokens. A Parser holds no per-call state and may be shared.
type Parser struct {
	maxRepeat int
	maxDice   int
}

// NewParser returns a Parser with the given options applied.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DefaultMaxRepeat caps N in "NxDice" for the package-level Parse. Each
// repeat costs one slice entry, so an unbounded "2147483647xd6" would try to
// allocate tens of gigabytes.
const DefaultMaxRepeat = 1 << 20

var defaultParser = NewParser(WithMaxRepeat(DefaultMaxRepeat))

// Parse parses input with a repeat cap of DefaultMaxRepeat and no dice cap.
// See Parser.Parse.
func Parse(input string) ([]RollSpec, error) {
	return defaultParser.Parse(input)
}

// MustParse is like Parse but panics on error.
func MustParse(input string) []RollSpec {
	specs, err := Parse(input)
	if err != nil {
		panic("dice: MustParse(" + input + "): " + err.Error())
	}
	return specs
}

// Parse returns one spec per rolled term, with "NxDice" expanded into N
// entries sharing the same spec value. On failure it returns a nil slice and
// either a *SyntaxError or a *LimitError; there is never a partial result.
func (p *Parser) Parse(input string) ([]RollSpec, error) {
	st := &parseState{parser: p, cur: newCursor(strings.ToLower(input))}

	specs, ok := st.rollList()
	if ok && !st.cur.exhausted() {
		st.fail()
		ok = false
	}
	if !ok {
		if st.err != nil {
			return nil, st.err
		}
		return nil, &SyntaxError{Input: st.cur.src, Offset: st.failAt}
	}
	return specs, nil
}

// parseState carries the cursor through one Parse call.
type parseState struct {
	parser *Parser
	cur    cursor
	failAt int
	err    error
}

// fail records the furthest position at which a rule gave up.
func (st *parseState) fail() {
	st.cur.skipSpace()
	if st.cur.pos > st.failAt {
		st.failAt = st.cur.pos
	}
}

func (st *parseState) rollList() ([]RollSpec, bool) {
	var out []RollSpec
	for {
		specs, ok := st.term()
		if !ok {
			return nil, false
		}
		out = append(out, specs...)
		if !st.cur.consume(";") {
			return out, true
		}
	}
}

func (st *parseState) term() ([]RollSpec, bool) {
	repeat := 1
	saved := st.cur
	if n, ok := st.cur.readUint(); ok && st.cur.consume("x") {
		repeat = n
	} else {
		// "6d4" reads 6 and finds no "x": give the 6 back to the atom.
		st.cur = saved
	}

	if repeat == 0 {
		st.cur = saved
		st.fail()
		return nil, false
	}
	if limit := st.parser.maxRepeat; limit > 0 && repeat > limit {
		st.err = &LimitError{What: "repeat count", Value: repeat, Max: limit}
		return nil, false
	}

	expr, ok := st.diceExpr()
	if !ok {
		return nil, false
	}
	out := make([]RollSpec, repeat)
	for i := range out {
		out[i] = expr
	}
	return out, true
}

func (st *parseState) diceExpr() (RollSpec, bool) {
	first, ok := st.atom()
	if !ok {
		return nil, false
	}
	var acc RollSpec = first
	for st.cur.consume("&") {
		next, ok := st.atom()
		if !ok {
			return nil, false
		}
		acc = NewSumRoll(acc, next)
	}
	return acc, true
}

// atom commits once it starts: a missing "d" or side count fails the whole parse.
func (st *parseState) atom() (*SingleRoll, bool) {
	st.cur.skipSpace()
	start := st.cur

	count := 1
	if n, ok := st.cur.readUint(); ok {
		count = n
	}
	if !st.cur.consume("d") {
		st.fail()
		return nil, false
	}
	sides, ok := st.cur.readUint()
	if !ok {
		st.fail()
		return nil, false
	}
	modifier := 0
	if m, ok := st.cur.readInt(); ok {
		modifier = m
	}

	if count == 0 || sides == 0 {
		st.cur = start
		st.fail()
		return nil, false
	}
	if limit := st.parser.maxDice; limit > 0 && count > limit {
		st.err = &LimitError{What: "dice count", Value: count, Max: limit}
		return nil, false
	}
	return NewSingleRoll(count, sides, modifier), true
}
