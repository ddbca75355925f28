package define

// AuthStrategy describes how requests to an API are authenticated. It is a
// closed set: AuthNone, BearerToken, APIKey, and Basic are the only
// implementations.
//
// Credential values are never stored in a definition; strategies reference
// environment variables by name (see RestAPI.EnvAuth, EnvUsername, and
// EnvPassword) and generated clients resolve them at request time.
type AuthStrategy interface {
	isAuthStrategy()
}

// AuthNone is for APIs requiring no authentication.
type AuthNone struct{}

// BearerToken sends the resolved token as "Bearer {token}".
type BearerToken struct {
	// Header receiving the token. Defaults to "Authorization" when empty.
	Header string
}

// APIKey sends the resolved key verbatim, without a scheme prefix.
type APIKey struct {
	// Header receiving the key (e.g., "xi-api-key"). Defaults to
	// "Authorization" when empty.
	Header string
}

// Basic sends an HTTP Basic Authorization header built from the username and
// password environment variables named on the API.
type Basic struct{}

func (AuthNone) isAuthStrategy()    {}
func (BearerToken) isAuthStrategy() {}
func (APIKey) isAuthStrategy()      {}
func (Basic) isAuthStrategy()       {}

// AuthHeader returns the header an authentication strategy writes to, or ""
// for strategies with a fixed header (Basic) or none at all (AuthNone).
func AuthHeader(a AuthStrategy) string {
	switch s := a.(type) {
	case BearerToken:
		if s.Header == "" {
			return "Authorization"
		}
		return s.Header
	case APIKey:
		if s.Header == "" {
			return "Authorization"
		}
		return s.Header
	}
	return ""
}
