package endpoint

// DataMapper copies data between an entity and its request/response wire
// shapes. Implementations are pure: no validation, no side effects, and
// FromRequest applied twice with the same request must leave the entity
// in the same state as applying it once. FromRequest never assigns
// entity identity; ids belong to the store.
type DataMapper[E, Req, Resp any] interface {
	// FromRequest copies permitted fields from the request into an
	// existing entity, in place.
	FromRequest(src *Req, dst *E)

	// ToResponse copies exposed fields from the entity into an existing
	// response, in place. Fields outside the response contract are never
	// leaked.
	ToResponse(src *E, dst *Resp)
}

// EntityFromRequest builds a fresh entity from a request via the mapper.
// It is a fixed composition of a default-constructed entity and
// FromRequest; mappers cannot diverge between the two call styles.
func EntityFromRequest[E, Req, Resp any](m DataMapper[E, Req, Resp], src *Req) *E {
	var dst E
	m.FromRequest(src, &dst)
	return &dst
}

// ResponseFromEntity builds a fresh response from an entity via the
// mapper.
func ResponseFromEntity[E, Req, Resp any](m DataMapper[E, Req, Resp], src *E) *Resp {
	var dst Resp
	m.ToResponse(src, &dst)
	return &dst
}
