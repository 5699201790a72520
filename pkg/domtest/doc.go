// Package domtest provides helpers for testing code built on the dom
// package: snippet parsing, fluent node builders, and assertion helpers
// over rendered output.
package domtest
