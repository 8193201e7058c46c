// Package parser implements the vim-style command grammar as a pure
// function: Parse(input, session, options) never mutates anything handed
// to it, and the same arguments always produce the same Result. Callers
// feed keys one at a time, threading the returned NewSession into the next
// call, and discard their own accumulated input whenever Complete or Err
// is set.
//
// # Grammar
//
// An optional count, then a dispatch on the next character: an operator
// (d/c/y/>/<), a bare motion, a g-prefixed motion (gg), a z-prefixed
// viewport hint (zz/zt/zb), a find-character prefix (f/F/t/T) awaiting its
// target, a fixed single-character action, or Ctrl-R for redo. An operator
// followed by its own key is the linewise form (dd, yy, ...); followed by
// i<obj>/a<obj> is operator-on-text-object; otherwise the parser expects a
// motion. Counts before and after the operator compose multiplicatively.
//
// # Session memory across commands
//
// Session.LastFind survives a completed command (it is the one field
// resetPending does not clear), so a ; or , typed later, after other
// commands have run, still repeats the most recent f/F/t/T.
package parser
