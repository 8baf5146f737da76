// Package server serves event stream and guest list tables over HTTP.
//
// Routes:
//
//	GET  /events/{id}?names=a,b&rows=n   full event stream page
//	GET  /guests/{id}?names=a,b&rows=n   full guest list page
//	POST /render                         tbody fragment for a JSON request
//	GET  /live                           WebSocket; one reply per request
//	GET  /metrics                        Prometheus (when enabled)
//	GET  /healthz                        liveness
//
// Every request builds a fresh document, so handlers share no render state.
//
//	srv := server.New(cfg)
//	err := srv.Run(ctx) // returns after ctx is cancelled and shutdown completes
package server
