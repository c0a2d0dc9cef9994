package search

import (
	aho "github.com/petar-dambovaliev/aho-corasick"

	"headersearch/internal/catalog"
	"headersearch/internal/domain"
)

// Destinations of the fixed navigation table
const (
	DestinationMachines = "/maquinas"
	DestinationBrands   = "/marcas"
	DestinationQuote    = "/cotizar"
	DestinationAbout    = "/nosotros"
)

// DefaultTargets returns the navigation table suggested by the header search.
// Keywords cover partial words and brand names users type; accented and
// unaccented spellings are both listed because matching does not strip accents.
func DefaultTargets() []domain.NavigationTarget {
	return []domain.NavigationTarget{
		{
			Destination: DestinationMachines,
			Label:       "Máquinas Industriales",
			Keywords:    []string{"máquina", "maquina", "tejer", "tejido", "rectilínea", "rectilinea", "catálogo", "catalogo"},
		},
		{
			Destination: DestinationBrands,
			Label:       "Marcas",
			Keywords:    []string{"marca", "stoll", "shima", "seiki", "protti", "steiger", "zamark", "sangiacomo"},
		},
		{
			Destination: DestinationQuote,
			Label:       "Solicitar Cotización",
			Keywords:    []string{"cotiz", "precio", "presupuesto", "comprar", "quote"},
		},
		{
			Destination: DestinationAbout,
			Label:       "Nosotros",
			Keywords:    []string{"nosotros", "historia", "empresa", "larsen", "contacto", "about"},
		},
	}
}

// route is a navigation target with its keywords compiled into an automaton
type route struct {
	target    domain.NavigationTarget
	automaton aho.AhoCorasick
	compiled  bool
}

func newRoute(target domain.NavigationTarget) route {
	keywords := make([]string, 0, len(target.Keywords))
	for _, kw := range target.Keywords {
		if folded := catalog.Fold(kw); folded != "" {
			keywords = append(keywords, folded)
		}
	}

	r := route{target: target}
	if len(keywords) == 0 {
		return r
	}

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	r.automaton = builder.Build(keywords)
	r.compiled = true
	return r
}

// contains reports whether the folded query contains any keyword of the route
func (r route) contains(query string) bool {
	if !r.compiled || query == "" {
		return false
	}
	return len(r.automaton.FindAll(query)) > 0
}

// Router answers whether a query suggests one of a fixed set of destinations.
// The table is compiled once and never changes.
type Router struct {
	routes []route
}

// NewRouter compiles the given navigation table
func NewRouter(targets []domain.NavigationTarget) *Router {
	r := &Router{routes: make([]route, 0, len(targets))}
	for _, t := range targets {
		r.routes = append(r.routes, newRoute(t))
	}
	return r
}

// NewDefaultRouter compiles DefaultTargets
func NewDefaultRouter() *Router {
	return NewRouter(DefaultTargets())
}

// Targets returns the navigation table in declaration order
func (r *Router) Targets() []domain.NavigationTarget {
	targets := make([]domain.NavigationTarget, len(r.routes))
	for i, rt := range r.routes {
		targets[i] = rt.target
	}
	return targets
}

// MatchesDestination reports whether query contains at least one of target's
// keywords as a substring. Matching is not word-boundary aware.
func (r *Router) MatchesDestination(query string, target domain.NavigationTarget) bool {
	q := catalog.Fold(query)
	for _, rt := range r.routes {
		if rt.target.Destination == target.Destination && sameKeywords(rt.target.Keywords, target.Keywords) {
			return rt.contains(q)
		}
	}
	return newRoute(target).contains(q)
}

// Match returns every target suggested by query, in table order
func (r *Router) Match(query string) []domain.NavigationTarget {
	q := catalog.Fold(query)
	var matched []domain.NavigationTarget
	for _, rt := range r.routes {
		if rt.contains(q) {
			matched = append(matched, rt.target)
		}
	}
	return matched
}

func sameKeywords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
