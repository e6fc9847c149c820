// Package v1 is the MediaConvert data model: one Go type per request, result and shape
// of the service, and one string type per enumeration.
//
// Types are declared by hand. Accessors, equality, hashing and the kind registry live in
// the zz_generated files produced by cmd/codegen.
package v1
