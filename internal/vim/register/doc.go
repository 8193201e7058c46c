// Package register holds the vim session's register store.
//
// The grammar (see package parser) accepts an explicit register-name
// prefix ("a, "b, ...) so the design stays forward-compatible with
// additional registers, but only the unnamed register (") is actually
// backed by storage: every name, named or not, resolves to the same
// unnamed slot. A future register-store expansion can give names their
// own storage without changing the grammar that already accepts them.
package register
