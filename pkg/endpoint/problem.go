package endpoint

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/procyon-labs/identity-endpoints/pkg/identity"
)

// ValidationProblem is the uniform 422 payload for store rejections:
// a mapping from error code to the human-readable descriptions reported
// under that code.
type ValidationProblem struct {
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

// NewValidationProblem folds a failed Result into a ValidationProblem,
// accumulating descriptions per code. Only the (code, description) pairs
// cross into the payload; nothing store-internal beyond them.
func NewValidationProblem(res identity.Result) ValidationProblem {
	problem := ValidationProblem{
		Title:  "One or more validation errors occurred.",
		Status: http.StatusUnprocessableEntity,
		Errors: make(map[string][]string, len(res.Errors)),
	}
	for _, e := range res.Errors {
		problem.Errors[e.Code] = append(problem.Errors[e.Code], e.Description)
	}
	return problem
}

func renderValidationProblem(w http.ResponseWriter, r *http.Request, res identity.Result) {
	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, NewValidationProblem(res))
}
