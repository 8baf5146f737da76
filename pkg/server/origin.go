package server

import (
	"net/http"
	"net/url"
)

// OriginCheck returns a WebSocket CheckOrigin func. With no allowed
// origins only same-origin requests pass; "*" allows any origin.
func OriginCheck(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return SameOriginCheck
	}
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[o] = true
	}
	return func(r *http.Request) bool {
		if set["*"] {
			return true
		}
		origin := r.Header.Get("Origin")
		return set[origin] || SameOriginCheck(r)
	}
}

// SameOriginCheck reports whether the request Origin matches its Host.
// Requests without an Origin header (curl, same-origin) pass.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if r.Host == "" {
		return false
	}
	return originURL.Host == r.Host
}
