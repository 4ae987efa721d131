package session

// Route is a navigation target.
type Route string

const (
	RouteMain   Route = "/"
	RouteSignUp Route = "/sign-up"
)

// Allow reports whether protected content may be shown for the given state.
func Allow(s State) bool {
	return s == StateAuthenticated
}

// Resolve is the route guard: it returns the main route for an authenticated
// session and redirects everyone else to the sign-up entry point. It holds no
// state of its own.
func Resolve(s State) Route {
	if Allow(s) {
		return RouteMain
	}
	return RouteSignUp
}
