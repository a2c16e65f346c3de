package classify

// Explain classifies line and reports why it is Not Safe.
//
// Tokens are parsed lazily alongside evaluation: once a pair violates the
// rule, remaining tokens are not inspected, so "1 9 x" is Not Safe for its
// delta and never reports a format error.
func Explain(line string) Result {
	var e evaluator
	for i, tok := range Tokenize(line) {
		v, err := parseAt(tok, i)
		if err != nil {
			return Result{Reason: ReasonFormat, Direction: e.dir, Err: err}
		}
		if !e.push(v) {
			break
		}
	}
	return e.result()
}

// Classify reports whether line is safe. A token that fails to parse yields
// false together with the *FormatError.
func Classify(line string) (bool, error) {
	r := Explain(line)
	return r.Safe, r.Err
}
