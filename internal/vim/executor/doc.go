// Package executor applies a parsed vim command to editor state: buffer,
// cursor, mode, visual selection, registers, search state, and undo
// history. It is the only package that mutates any of those in response to
// a command; motion, textobj, and search stay pure functions of their
// inputs.
package executor
