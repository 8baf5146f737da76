// Package errors provides coded, actionable errors for wutup.
//
// Every error has a stable code (e.g., "E001") that maps to a category,
// a short message, and a documentation URL. Codes are what the HTTP server
// and the WebSocket live renderer report to clients, so they must not be
// renumbered.
//
// # Categories
//
//   - render: table rendering failures (missing container, short name list)
//   - data: data source and query failures
//   - publish: object storage uploads
//   - server: HTTP and WebSocket request errors
//   - config: configuration files
//   - cli: command usage
//
// # Usage
//
//	err := errors.New("E001").
//	    WithDetailf("no element with id %q", id).
//	    WithSuggestion("Create the <table> before rendering into it")
//
//	fmt.Println(err.Format())
package errors
