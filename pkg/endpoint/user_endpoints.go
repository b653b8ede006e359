package endpoint

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/procyon-labs/identity-endpoints/pkg/identity"
)

// UserEndpoints registers user management routes on a route group. Each
// Map method adds exactly one route; composition is additive and happens
// once, at mount time. The builder holds its router, store and mapper
// immutably after construction.
type UserEndpoints[E, Req, Resp any] struct {
	r      chi.Router
	store  identity.UserStore[E]
	mapper DataMapper[E, Req, Resp]
}

// NewUserEndpoints creates a user route builder over the given group.
func NewUserEndpoints[E, Req, Resp any](r chi.Router, store identity.UserStore[E], mapper DataMapper[E, Req, Resp]) *UserEndpoints[E, Req, Resp] {
	return &UserEndpoints[E, Req, Resp]{r: r, store: store, mapper: mapper}
}

// MapAll registers the full endpoint set.
func (e *UserEndpoints[E, Req, Resp]) MapAll() {
	e.MapList()
	e.MapCreate()
	e.MapRead()
	e.MapUpdate()
	e.MapDelete()

	e.MapGetRoles()
	e.MapAddRoles()
	e.MapRemoveRoles()

	e.MapGetClaims()
	e.MapAddClaims()
	e.MapRemoveClaims()
}

// MapList registers GET / with pageSize/pageIndex pagination.
func (e *UserEndpoints[E, Req, Resp]) MapList() { e.r.Get("/", e.list) }

// MapCreate registers POST /.
func (e *UserEndpoints[E, Req, Resp]) MapCreate() { e.r.Post("/", e.create) }

// MapRead registers GET /{id}.
func (e *UserEndpoints[E, Req, Resp]) MapRead() { e.r.Get("/{id}", e.read) }

// MapUpdate registers PUT /{id}.
func (e *UserEndpoints[E, Req, Resp]) MapUpdate() { e.r.Put("/{id}", e.update) }

// MapDelete registers DELETE /{id}.
func (e *UserEndpoints[E, Req, Resp]) MapDelete() { e.r.Delete("/{id}", e.delete) }

// MapGetRoles registers GET /{id}/roles.
func (e *UserEndpoints[E, Req, Resp]) MapGetRoles() { e.r.Get("/{id}/roles", e.getRoles) }

// MapAddRoles registers POST /{id}/roles.
func (e *UserEndpoints[E, Req, Resp]) MapAddRoles() { e.r.Post("/{id}/roles", e.addRoles) }

// MapRemoveRoles registers DELETE /{id}/roles.
func (e *UserEndpoints[E, Req, Resp]) MapRemoveRoles() { e.r.Delete("/{id}/roles", e.removeRoles) }

// MapGetClaims registers GET /{id}/claims.
func (e *UserEndpoints[E, Req, Resp]) MapGetClaims() { e.r.Get("/{id}/claims", e.getClaims) }

// MapAddClaims registers POST /{id}/claims.
func (e *UserEndpoints[E, Req, Resp]) MapAddClaims() { e.r.Post("/{id}/claims", e.addClaims) }

// MapRemoveClaims registers DELETE /{id}/claims.
func (e *UserEndpoints[E, Req, Resp]) MapRemoveClaims() { e.r.Delete("/{id}/claims", e.removeClaims) }

// find resolves the {id} path parameter to an entity, writing the 404 or
// 500 response itself when resolution fails.
func (e *UserEndpoints[E, Req, Resp]) find(w http.ResponseWriter, r *http.Request) (*E, bool) {
	id := chi.URLParam(r, "id")
	entity, err := e.store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
		} else {
			slog.Error("Failed finding user", "id", id, "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return nil, false
	}
	return entity, true
}

func (e *UserEndpoints[E, Req, Resp]) list(w http.ResponseWriter, r *http.Request) {
	pageSize := queryInt(r, "pageSize", defaultPageSize)
	pageIndex := queryInt(r, "pageIndex", 0)

	entities, err := e.store.List(r.Context(), pageIndex*pageSize, pageSize)
	if err != nil {
		slog.Error("Failed listing users", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	response := make([]Resp, 0, len(entities))
	for _, entity := range entities {
		response = append(response, *ResponseFromEntity(e.mapper, entity))
	}
	render.JSON(w, r, response)
}

func (e *UserEndpoints[E, Req, Resp]) create(w http.ResponseWriter, r *http.Request) {
	var req Req
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entity := EntityFromRequest(e.mapper, &req)
	res, err := e.store.Create(r.Context(), entity)
	if err != nil {
		slog.Error("Failed creating user", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !res.Succeeded() {
		renderValidationProblem(w, r, res)
		return
	}

	render.JSON(w, r, ResponseFromEntity(e.mapper, entity))
}

func (e *UserEndpoints[E, Req, Resp]) read(w http.ResponseWriter, r *http.Request) {
	entity, ok := e.find(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, ResponseFromEntity(e.mapper, entity))
}

func (e *UserEndpoints[E, Req, Resp]) update(w http.ResponseWriter, r *http.Request) {
	entity, ok := e.find(w, r)
	if !ok {
		return
	}

	var req Req
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	e.mapper.FromRequest(&req, entity)

	res, err := e.store.Update(r.Context(), entity)
	if err != nil {
		slog.Error("Failed updating user", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !res.Succeeded() {
		renderValidationProblem(w, r, res)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (e *UserEndpoints[E, Req, Resp]) delete(w http.ResponseWriter, r *http.Request) {
	entity, ok := e.find(w, r)
	if !ok {
		return
	}

	res, err := e.store.Delete(r.Context(), entity)
	if err != nil {
		slog.Error("Failed deleting user", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !res.Succeeded() {
		renderValidationProblem(w, r, res)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (e *UserEndpoints[E, Req, Resp]) getRoles(w http.ResponseWriter, r *http.Request) {
	entity, ok := e.find(w, r)
	if !ok {
		return
	}

	roles, err := e.store.GetRoles(r.Context(), entity)
	if err != nil {
		slog.Error("Failed getting user roles", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if roles == nil {
		roles = []string{}
	}
	render.JSON(w, r, roles)
}

func (e *UserEndpoints[E, Req, Resp]) addRoles(w http.ResponseWriter, r *http.Request) {
	entity, ok := e.find(w, r)
	if !ok {
		return
	}

	var roles []string
	if err := render.DecodeJSON(r.Body, &roles); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := e.store.AddToRoles(r.Context(), entity, roles)
	if err != nil {
		slog.Error("Failed adding user roles", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !res.Succeeded() {
		renderValidationProblem(w, r, res)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (e *UserEndpoints[E, Req, Resp]) removeRoles(w http.ResponseWriter, r *http.Request) {
	entity, ok := e.find(w, r)
	if !ok {
		return
	}

	var roles []string
	if err := render.DecodeJSON(r.Body, &roles); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := e.store.RemoveFromRoles(r.Context(), entity, roles)
	if err != nil {
		slog.Error("Failed removing user roles", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !res.Succeeded() {
		renderValidationProblem(w, r, res)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (e *UserEndpoints[E, Req, Resp]) getClaims(w http.ResponseWriter, r *http.Request) {
	entity, ok := e.find(w, r)
	if !ok {
		return
	}

	claims, err := e.store.GetClaims(r.Context(), entity)
	if err != nil {
		slog.Error("Failed getting user claims", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	response := make([]ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		response = append(response, ClaimResponse{Type: claim.Type, Value: claim.Value})
	}
	render.JSON(w, r, response)
}

// addClaims applies claims one at a time and aborts at the first store
// rejection; claims applied before the failure remain applied.
func (e *UserEndpoints[E, Req, Resp]) addClaims(w http.ResponseWriter, r *http.Request) {
	entity, ok := e.find(w, r)
	if !ok {
		return
	}

	var req []ClaimRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	for _, item := range req {
		res, err := e.store.AddClaim(r.Context(), entity, claimFromRequest(item))
		if err != nil {
			slog.Error("Failed adding user claim", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if !res.Succeeded() {
			renderValidationProblem(w, r, res)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (e *UserEndpoints[E, Req, Resp]) removeClaims(w http.ResponseWriter, r *http.Request) {
	entity, ok := e.find(w, r)
	if !ok {
		return
	}

	var req []ClaimRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	for _, item := range req {
		res, err := e.store.RemoveClaim(r.Context(), entity, claimFromRequest(item))
		if err != nil {
			slog.Error("Failed removing user claim", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if !res.Succeeded() {
			renderValidationProblem(w, r, res)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
