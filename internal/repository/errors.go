// Package repository contains the data access layer. Every repository is
// scoped to an owning account: lookups and mutations only ever see records
// whose owner field matches the acting account, and an ownership mismatch is
// reported exactly like an absent record so the existence of other accounts'
// data never leaks.
package repository

import "errors"

// ErrNotFound is returned when a record does not exist or is owned by a
// different account. The two cases are deliberately indistinguishable.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registering with an email that already has
// an account. Handlers translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already registered")

// ErrValidation is returned when input fails a collection-specific check,
// such as an unknown maintenance ticket status. Handlers translate this into
// an HTTP 400 response.
var ErrValidation = errors.New("validation failed")
