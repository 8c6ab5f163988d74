package rbx

import "github.com/go-playground/validator/v10"

// paramValidator checks the `validate` tags on parameter structs before
// any request is built. Only local invariants are enforced (required
// fields non-empty); the service rejects everything else.
var paramValidator = validator.New(validator.WithRequiredStructEnabled())

func validateParams(p any) error {
	return paramValidator.Struct(p)
}
