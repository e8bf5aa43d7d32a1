package guard

import (
	"go-talentiq-client/internal/models"
	"go-talentiq-client/internal/nav"
	"go-talentiq-client/internal/session"
)

// State of session resolution. Loading means the store has not been
// consulted yet; it transitions exactly once.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

// Decision is what happens to a protected subtree.
type Decision int

const (
	// DecisionPending blocks rendering behind a neutral indicator
	// while the session is still resolving.
	DecisionPending Decision = iota
	// DecisionRedirectLogin sends an unauthenticated user to login.
	DecisionRedirectLogin
	// DecisionRedirectHome sends a wrong-role user to the landing view.
	DecisionRedirectHome
	// DecisionAllow renders the protected subtree.
	DecisionAllow
)

// Guard gates role-scoped subtrees on session state. Construct one
// per process; Resolve consults the store lazily, so the first call
// performs the Loading transition.
type Guard struct {
	store    *session.Store
	nav      nav.Navigator
	state    State
	identity *models.Identity
}

func New(store *session.Store, navigator nav.Navigator) *Guard {
	return &Guard{store: store, nav: navigator, state: StateLoading}
}

// State exposes the current resolution state.
func (g *Guard) State() State {
	return g.state
}

// ResolveSession completes the Loading transition by consulting the
// store. Safe to call more than once; only the first call after
// construction (or Invalidate) changes state.
func (g *Guard) ResolveSession() {
	if g.state != StateLoading {
		return
	}
	g.identity = g.store.Current()
	if g.identity == nil {
		g.state = StateUnauthenticated
	} else {
		g.state = StateAuthenticated
	}
}

// Resolve decides access for a subtree requiring the given role and
// performs the redirect the decision calls for. While the session is
// still resolving the subtree stays blocked behind a pending
// indicator and no redirect happens. Role comparison is normalized,
// since the stored value can come from password login, OAuth, or
// cache in different spellings.
func (g *Guard) Resolve(required models.Role) Decision {
	switch g.state {
	case StateLoading:
		return DecisionPending
	case StateUnauthenticated:
		g.nav.Redirect(nav.RouteLogin)
		return DecisionRedirectLogin
	}

	if required != "" && !required.Equal(string(g.identity.Role)) {
		g.nav.Redirect(nav.RouteLanding)
		return DecisionRedirectHome
	}
	return DecisionAllow
}

// Invalidate drops back to Loading so the next ResolveSession
// re-reads the store, for use on login/logout events.
func (g *Guard) Invalidate() {
	g.state = StateLoading
	g.identity = nil
}
