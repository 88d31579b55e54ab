package ui

// Route is a navigable page, addressed by its URL path.
type Route int

const (
	RouteOnboard Route = iota
	RouteTerms
	RouteContact
)

// Routes lists every route in navigation order.
var Routes = []Route{RouteOnboard, RouteTerms, RouteContact}

// Path returns the URL path of the route.
func (r Route) Path() string {
	switch r {
	case RouteTerms:
		return "/terms-and-conditions"
	case RouteContact:
		return "/contact-us"
	default:
		return "/"
	}
}

// Title is the navbar label.
func (r Route) Title() string {
	switch r {
	case RouteOnboard:
		return "Home"
	case RouteTerms:
		return "Terms"
	case RouteContact:
		return "Contact Us"
	default:
		return "Unknown"
	}
}

func (r Route) String() string {
	return r.Path()
}

// ParseRoute maps a path to its route. Unknown paths report false.
func ParseRoute(path string) (Route, bool) {
	switch path {
	case "", "/":
		return RouteOnboard, true
	case "/terms-and-conditions":
		return RouteTerms, true
	case "/contact-us":
		return RouteContact, true
	}
	return RouteOnboard, false
}
