package identity

// Validation error codes produced by the built-in stores. Custom store
// implementations may use their own vocabulary; the endpoint layer keys
// the validation-problem payload by whatever codes the store emits.
const (
	CodeInvalidUserName   = "InvalidUserName"
	CodeDuplicateUserName = "DuplicateUserName"
	CodeDuplicateEmail    = "DuplicateEmail"
	CodeInvalidRoleName   = "InvalidRoleName"
	CodeDuplicateRoleName = "DuplicateRoleName"
	CodeUserAlreadyInRole = "UserAlreadyInRole"
	CodeUserNotInRole     = "UserNotInRole"
	CodeInvalidClaim      = "InvalidClaim"
	CodeDuplicateClaim    = "DuplicateClaim"
)

// ValidationError is a single (code, description) pair explaining why a
// store refused a mutation.
type ValidationError struct {
	Code        string
	Description string
}

// Result is the outcome of a store mutation: success, or an ordered set
// of validation errors.
type Result struct {
	Errors []ValidationError
}

// Succeeded reports whether the mutation was applied.
func (r Result) Succeeded() bool {
	return len(r.Errors) == 0
}

// Ok returns a successful Result.
func Ok() Result {
	return Result{}
}

// Fail returns a failed Result carrying the given validation errors.
func Fail(errs ...ValidationError) Result {
	return Result{Errors: errs}
}

// Failf returns a failed Result with a single (code, description) error.
func Failf(code, description string) Result {
	return Result{Errors: []ValidationError{{Code: code, Description: description}}}
}
