package endpoint

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/procyon-labs/identity-endpoints/pkg/identity"
)

func TestNewValidationProblem(t *testing.T) {
	res := identity.Fail(
		identity.ValidationError{Code: identity.CodeDuplicateUserName, Description: "user name \"alice\" is already taken"},
		identity.ValidationError{Code: identity.CodeDuplicateEmail, Description: "email \"alice@example.com\" is already taken"},
	)

	problem := NewValidationProblem(res)

	assert.Equal(t, "One or more validation errors occurred.", problem.Title)
	assert.Equal(t, http.StatusUnprocessableEntity, problem.Status)
	assert.Equal(t, map[string][]string{
		identity.CodeDuplicateUserName: {"user name \"alice\" is already taken"},
		identity.CodeDuplicateEmail:    {"email \"alice@example.com\" is already taken"},
	}, problem.Errors)
}

// Descriptions sharing a code accumulate under that code, in order.
func TestNewValidationProblemGroupsByCode(t *testing.T) {
	res := identity.Fail(
		identity.ValidationError{Code: identity.CodeInvalidClaim, Description: "first"},
		identity.ValidationError{Code: identity.CodeInvalidClaim, Description: "second"},
	)

	problem := NewValidationProblem(res)

	assert.Equal(t, []string{"first", "second"}, problem.Errors[identity.CodeInvalidClaim])
}
