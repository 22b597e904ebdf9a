// Package schema provides the declarative description of a page object.
//
// A [Schema] names, by selector, how to locate one element or a group of
// elements, and carries named child schemas for lookups below each match.
// Schemas are plain immutable values: they hold no reference to any
// document and can be built once and reused by any number of page objects.
//
// # Building Schemas
//
// Two combinators build schemas, one per [Mode]:
//
//	login := schema.Single("form.login", schema.Children{
//	    "user":     schema.Single("input[name=user]"),
//	    "password": schema.Single("input[name=password]"),
//	    "errors":   schema.Multi(".error"),
//	})
//
// Either combinator also accepts an existing schema in place of a pattern.
// The pattern is adopted, the mode is forced to the combinator's own mode,
// and the children are adopted unless another source is given:
//
//	rows := schema.Multi("tr", schema.Children{"cells": schema.Multi("td")})
//	firstRow := schema.Single(rows) // Single "tr" with the "cells" child
//
// Children are never merged. The winning source replaces the whole mapping,
// in this order of precedence:
//
//  1. a *Schema passed as the children argument (its children are used)
//  2. a Children mapping passed as the children argument
//  3. the children of a *Schema passed in place of the pattern
//  4. no children
//
// # Validation
//
// [Single] and [Multi] never panic. Malformed input such as a nil schema or
// a nil child is kept on the returned value and reported by [Validate];
// [IsSchema] is the non-failing predicate form. [Build] is the validating
// entry point that rejects malformed input immediately. Patterns are opaque
// to this package, including the empty one; the querier that runs them
// reports the ones it cannot compile.
//
// # Schema Files
//
// Schemas can be stored as YAML, JSON or TOML using the same shape as the
// data model:
//
//	selector: [Single, .results]
//	children:
//	  items:
//	    selector: [Multi, li]
//
// See [Load], [Decode] and [Encode].
package schema
