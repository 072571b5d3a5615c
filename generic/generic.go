// Package generic holds the placeholder types that template packages such
// as chain are written against. gengen rewrites every generic.T, generic.U
// and generic.V selector into the concrete type names it is given, in that
// order.
//
// Used directly, the placeholders are plain interface{} types, so a template
// package also works unspecialized with dynamically typed values.
package generic

// T is the first type substituted by gengen
type T interface{}

// U is the second type substituted by gengen
type U interface{}

// V is the third type substituted by gengen
type V interface{}
