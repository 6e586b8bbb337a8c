package domain

// ComponentKind identifies which part of a project a task updates.
type ComponentKind int

const (
	// ComponentMain is the project's top-level checkout.
	ComponentMain ComponentKind = iota
	// ComponentServer is the project's server (Maven) component.
	ComponentServer
	// ComponentWeb is the project's web (npm) component.
	ComponentWeb
)

// String returns the lower-case component name.
func (k ComponentKind) String() string {
	switch k {
	case ComponentServer:
		return "server"
	case ComponentWeb:
		return "web"
	default:
		return "main"
	}
}

// Label returns the display name of the component for a project,
// e.g. "shop", "shop-server" or "shop-web".
func (k ComponentKind) Label(project string) string {
	if k == ComponentMain {
		return project
	}
	return project + "-" + k.String()
}

// Restriction narrows a target to a single component.
type Restriction int

const (
	// RestrictNone updates the main checkout and every declared component.
	RestrictNone Restriction = iota
	// RestrictServer updates only the server component.
	RestrictServer
	// RestrictWeb updates only the web component.
	RestrictWeb
)

// String returns the restriction name.
func (r Restriction) String() string {
	switch r {
	case RestrictServer:
		return "server-only"
	case RestrictWeb:
		return "web-only"
	default:
		return "none"
	}
}

// Kind returns the component kind a restriction selects.
// RestrictNone maps to ComponentMain.
func (r Restriction) Kind() ComponentKind {
	switch r {
	case RestrictServer:
		return ComponentServer
	case RestrictWeb:
		return ComponentWeb
	default:
		return ComponentMain
	}
}

// RestrictionForSuffix maps a specifier suffix to a restriction.
// The boolean is false when the suffix is not a component letter.
func RestrictionForSuffix(suffix byte) (Restriction, bool) {
	switch suffix {
	case 's':
		return RestrictServer, true
	case 'w':
		return RestrictWeb, true
	default:
		return RestrictNone, false
	}
}

// UpdateTarget is a parsed specifier.
type UpdateTarget struct {
	RawSpecifier string
	BaseProject  string
	Restriction  Restriction
}
