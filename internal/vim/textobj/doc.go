// Package textobj implements the vim-style text object catalogue reached
// through the "i"/"a" prefix: iw/aw, iW/aW, bracket pairs ( [ { <, and
// quote pairs " ' `. Each lookup produces an inclusive [start, end]
// buffer.Range or reports that no containing object exists.
//
// Word objects are confined to the cursor's line. Bracket objects scan
// outward across lines with a depth counter to find the innermost
// enclosing pair. Quote objects never cross lines: vim itself only looks
// at the current line for quote pairs, since quotes are not reliably
// nested the way brackets are.
package textobj
