// Package strike implements the word strikethrough resolver.
//
// The resolver is the core of the write-forward editing mode: given a
// single line of text and a cursor offset, it locates the last word,
// decides whether it is already struck through, and produces the
// replacement range, replacement text, and new cursor offset. It is a
// pure function of its inputs: no internal state, no I/O, no host
// dependencies. Applying the resulting edit is the caller's job.
package strike
