package classify

// Bounds on the absolute difference between adjacent values.
const (
	MinDelta = 1
	MaxDelta = 3
)

// Direction is the monotonic direction fixed by the first adjacent pair.
type Direction int

const (
	// DirectionUnknown means fewer than two values have been seen.
	DirectionUnknown Direction = iota
	Increasing
	Decreasing
)

func (d Direction) String() string {
	switch d {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "unknown"
	}
}

// Reason explains a Not Safe result.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonDelta     Reason = "delta"
	ReasonDirection Reason = "direction"
	ReasonFormat    Reason = "format"
)

// Result is the outcome of evaluating one line.
type Result struct {
	Safe      bool
	Reason    Reason
	Direction Direction

	// Pair is the index of the second value of the offending pair.
	// Zero when Safe or when Reason is ReasonFormat.
	Pair int

	// Err is set when Reason is ReasonFormat.
	Err error
}

// pairDirection labels (prev, curr). Equal values fall into Increasing;
// the delta check rejects such pairs before the label is ever compared.
func pairDirection(prev, curr Value) Direction {
	if prev > curr {
		return Decreasing
	}
	return Increasing
}

func absDiff(a, b Value) Value {
	if a > b {
		return a - b
	}
	return b - a
}

// evaluator walks values one at a time and stops at the first violation.
type evaluator struct {
	prev  Value
	seen  int
	dir   Direction
	state Result
}

// push feeds the next value. It returns false once the line is known to be
// Not Safe; further values must not be pushed.
func (e *evaluator) push(v Value) bool {
	defer func() { e.seen++ }()
	if e.seen == 0 {
		e.prev = v
		return true
	}

	diff := absDiff(v, e.prev)
	if diff < MinDelta || diff > MaxDelta {
		e.state = Result{Reason: ReasonDelta, Direction: e.dir, Pair: e.seen}
		return false
	}

	d := pairDirection(e.prev, v)
	if e.dir == DirectionUnknown {
		e.dir = d
	}
	if d != e.dir {
		e.state = Result{Reason: ReasonDirection, Direction: e.dir, Pair: e.seen}
		return false
	}

	e.prev = v
	return true
}

func (e *evaluator) result() Result {
	if e.state.Reason != ReasonNone {
		return e.state
	}
	return Result{Safe: true, Direction: e.dir}
}

// Evaluate applies the monotonic bounded-delta rule to already parsed values.
func Evaluate(values []Value) Result {
	var e evaluator
	for _, v := range values {
		if !e.push(v) {
			break
		}
	}
	return e.result()
}
