// Package search implements literal-substring, case-insensitive search
// over a buffer: FindAll, NextMatch (forward or backward, with
// wraparound), and WordUnderCursor. There is no regex engine here; any characters special
// to a regex syntax are matched literally.
//
// Case folding uses golang.org/x/text/cases.Fold, a full Unicode case
// fold, rather than strings.ToLower, so non-ASCII text folds correctly.
package search
