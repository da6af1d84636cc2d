// Package checker enforces that use-case methods never return domain model
// types directly.
//
// # Pipeline
//
//  1. Classify: a file belongs to the use-case layer when its name mentions
//     "UseCase" or its path has both a "core" and a "usecases" directory.
//  2. Walk: each use-case file is parsed and walked depth first. Type specs and
//     method receivers form a stack of enclosing type names; every method with
//     a return clause declared inside a type becomes a Candidate.
//  3. Evaluate: the return signature and each type argument it wraps
//     (Result[T, E], []T, *T, map[K]V, tuples) are matched against the
//     configured model type names by camel-case word. A sub-signature that
//     mentions an exemption marker ("Response", "DTO") is not reported.
//  4. Aggregate: violations are collected in file order, then declaration order.
//
// Files are analyzed independently and may run concurrently; the report order
// only depends on the input order.
package checker
