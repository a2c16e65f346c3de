// Package stream applies the classify rule to every line of a source
// without loading the source into memory.
//
// A Validator produces verdicts as an iter.Seq2: the consumer pulls one line
// at a time and the producer suspends between lines. The source is opened
// when iteration starts and closed exactly once when it ends, whether the
// source was exhausted, the consumer broke out of the loop, or a read failed.
//
// Per-line format errors never escape the sequence; they become a false
// verdict and, with Debug set, a warning trace. Only *SourceIOError is
// surfaced, as the error half of the final pair.
package stream
