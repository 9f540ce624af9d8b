// Package sensei opens the documentation for a Rust crate. It resolves a
// crate name to a docs.rs page, a standard library page, or a locally
// built copy, and rebuilds local documentation once when it is missing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, sh/, rod/, http/).
package sensei
