// Package motion implements the vim-style motion catalogue used by the
// parser and executor: h/l/j/k, word and WORD motions, line motions,
// paragraph motions, bracket matching, percent-jump, and find-character
// motions, each as a pure function of (buffer, position, count).
//
// # Catalogue
//
// Lookup and LookupG resolve a keystroke to a Spec describing whether the
// motion is linewise (operators extend to whole lines) and inclusive
// (whether the target position is itself part of an operator range). The
// actual position computation lives in separate functions (WordForward,
// Vertical, MatchingBracket, and so on) rather than on Spec, since several
// motions need extra inputs a static table can't hold (desired column for
// j/k, a FindState for ; and ,).
//
// # Grapheme-aware stepping
//
// Word classification stays ASCII ([A-Za-z0-9_] is "word", per the core's
// contract), but column stepping uses buffer.PrevGraphemeStart and
// buffer.NextGraphemeStart so a combining mark or other multi-codepoint
// cluster is never split by a single h/l/w/b step.
package motion
