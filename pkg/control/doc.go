// Package control parses Debian-style package index text ("control file"
// format) into structured package records.
//
// # Overview
//
// A control file is a sequence of records separated by blank lines, where
// each record is a set of "Field: value" lines. Long field values fold onto
// subsequent lines that begin with whitespace. This package models exactly
// two fields:
//
//   - Package: the package name (the lookup key)
//   - Depends: the dependency declaration
//
// Everything else is skipped. Parsing is total: there is no reject path, and
// malformed input degrades to records with empty names or empty dependency
// lists instead of errors.
//
// # Depends grammar
//
// The Depends field is a comma-separated list of conjunctive terms. Each term
// may carry a parenthesized version constraint, which is discarded, and may
// be a pipe-separated group of alternatives, all of which are kept:
//
//	Depends: libc6 (>= 2.14), libssl3 | libssl1.1, zlib1g
//
// parses to [libc6 libssl3 libssl1.1 zlib1g].
//
// # Usage
//
//	repo := control.ParseRepository(text)
//	rec, ok := repo.Lookup("curl")
package control
