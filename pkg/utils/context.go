package utils

import "context"

type ContextKey string

// Principal is the authenticated caller as minted into the request context by
// the JWT middleware. Email is re-read from the token on every request so the
// invite email-match check is call-time fresh.
type Principal struct {
	ID       int
	Username string
	Email    string
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	idFloat, ok := ctx.Value(ContextKey("userId")).(float64)
	if !ok {
		return Principal{}, false
	}

	email, _ := ctx.Value(ContextKey("email")).(string)
	username, _ := ctx.Value(ContextKey("username")).(string)

	return Principal{
		ID:       int(idFloat),
		Username: username,
		Email:    email,
	}, true
}
