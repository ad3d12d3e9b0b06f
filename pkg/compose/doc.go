// Package compose folds a booking's item list and passenger summary into
// the ordered HTML body shared by the notification emails.
//
// Composition is deterministic text assembly over per-request template
// copies: one flights fragment per ticket item in input order followed by a
// single flights-end fragment, the passenger price sections, tax and
// insurance when present, accommodation and transfer lines, and - for the
// failure flows - discount lines. Totals and footers are appended by the
// calling composer, not here.
//
// All functions are pure with respect to their inputs; composing identical
// inputs twice produces byte-identical output.
package compose
