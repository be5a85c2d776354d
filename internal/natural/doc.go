// Package natural compares strings in natural (human) order: maximal runs
// of decimal digits are compared by their numeric value rather than
// character by character, so "img2" sorts before "img10".
//
// Two deliberate deviations from a pure numeric rule:
//
// Runs in which either side starts with '0' are tie-broken on the first
// differing character instead of numeric value, so "007" and "07" are not
// equal. When one run outlasts the other, the side with digits remaining
// compares greater regardless of any earlier difference.
//
// The scan stops as soon as either string is exhausted, so a string compares
// equal to any of its prefixes. Compare is therefore a total preorder
// suitable for ordering, not an equivalence test.
package natural
