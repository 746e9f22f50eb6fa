// Package validator provides a small validation abstraction for request and
// domain structs.
//
// Business code should depend on the Validator interface so validation can be
// shared and tested consistently. The go-playground/validator v10
// implementation also checks standalone values (Var, VarWithValue), which is
// what field-level components such as secureprop build on.
package validator
