// Package buffer implements the document buffer the resolver's edits
// are applied to.
//
// The buffer holds a single line of text and a cursor, matching the
// resolver's single-line scope. Mutation goes through Apply, which
// validates the edit, performs the replacement and cursor reposition
// atomically, and records the change. A rejected edit leaves both the
// text and the cursor untouched.
package buffer
