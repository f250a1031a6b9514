// Package core provides the PDF object model shared by the content stream
// tokenizer, the page and pattern helpers, and the operator handlers.
//
// # Object Types
//
// PDF defines eight basic object types, all implemented as types satisfying the
// Object interface:
//
//   - [Null] - represents the PDF null object
//   - [Bool] - represents PDF boolean values (true/false)
//   - [Int] - represents PDF integers
//   - [Real] - represents PDF real numbers (floating point)
//   - [String] - represents PDF string objects (literal or hexadecimal)
//   - [Name] - represents PDF name objects (e.g., /Type, /Pattern)
//   - [Array] - represents PDF arrays
//   - [Dict] - represents PDF dictionaries
//
// [Stream] pairs a dictionary with its raw bytes. [Stream.Decoded] applies
// the /Filter chain (FlateDecode with predictors, ASCIIHexDecode,
// ASCII85Decode) and caches the result.
//
// # Operands
//
// Operator handlers receive their operands as []Object. [ToFloat],
// [Array.Floats] and [Dict.GetNumber] accept either Int or Real, which is
// what the content stream grammar allows wherever a number is expected.
//
// # Inheritance
//
// [Dict.Inherited] resolves attributes through the /Parent chain. The walk
// stops at a depth limit and when a dictionary is visited twice, so
// malformed cyclic trees terminate.
package core
