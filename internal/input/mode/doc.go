// Package mode implements the draft-mode gate and its restricted
// editing filter.
//
// The gate is the single boolean state deciding whether write-forward
// editing is active. While engaged, the filter blocks navigation and
// deletion keys so the only way to retract a word is to strike it
// through. The gate is explicit state passed into the input layer, not
// a package-level global, so the handler stays independently testable.
package mode
