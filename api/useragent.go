// The user agent represents information about the client application that
// communicates with the ArangoDB server. Applications may provide their
// own UserAgent when creating a connector; otherwise the driver identifies
// itself.

package api

import "fmt"

// UserAgent provides information about the client application. It is
// rendered into the User-Agent header of every request.
type UserAgent interface {
	// Name returns the name of the user agent.
	Name() string

	// Version returns the version of the user agent.
	Version() Version

	// Homepage returns the homepage of the user agent.
	Homepage() string
}

// Version describes a user agent version according to the semantic
// versioning specification.
type Version struct {
	Major string
	Minor string
	Patch string
	Pre   string
}

// String formats the version as "major.minor.patch[-pre]".
func (v Version) String() string {
	s := v.Major + "." + v.Minor + "." + v.Patch
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	return s
}

// Library identity used by the default user agent.
const (
	libName     = "arango-eve"
	libHomepage = "https://arango.evalgo.org"
)

var libVersion = Version{Major: "0", Minor: "1", Patch: "0"}

// DefaultUserAgent is the user agent of the driver itself. It is used by
// connectors when the application does not provide its own.
type DefaultUserAgent struct{}

// Name returns the library name.
func (DefaultUserAgent) Name() string { return libName }

// Version returns the library version.
func (DefaultUserAgent) Version() Version { return libVersion }

// Homepage returns the library homepage.
func (DefaultUserAgent) Homepage() string { return libHomepage }

// String formats the user agent as "name vX.Y.Z, homepage".
func (ua DefaultUserAgent) String() string {
	return FormatUserAgent(ua)
}

// FormatUserAgent renders a UserAgent into its display string. Custom
// UserAgent implementations can delegate their String method to it.
func FormatUserAgent(agent UserAgent) string {
	s := fmt.Sprintf("%s v%s", agent.Name(), agent.Version())
	if agent.Homepage() != "" {
		s += ", " + agent.Homepage()
	}
	return s
}
