// Package loopback runs the short-lived local HTTP listener that receives a
// browser-based OAuth redirect for a desktop process.
//
// A Server accepts exactly one meaningful request on /callback, resolves it
// to an authorization code or a typed error, answers the browser with a
// minimal HTML page, and stops listening. Requests to any other path (browser
// favicon probes and the like) are answered with a 404 page and do not
// terminate the wait.
//
// # Lifecycle
//
// A server is bound at flow start, parked in a Registry keyed by port, and
// taken back out when the caller is ready to wait:
//
//	srv, err := loopback.Bind([]int{8721, 8722})
//	if err != nil {
//		// no port, preferred or ephemeral, could be bound
//	}
//	reg.Register(srv.Port(), srv)
//
//	// later, possibly from another goroutine:
//	srv, _ = reg.Take(port)
//	cb, err := srv.Wait(ctx) // ctx carries the overall timeout
//
// Wait is the only blocking operation and resolves at most once; afterwards
// the server is spent. Close is idempotent and safe to call from a defer, so
// abandoning an unresolved server never leaks its listener or goroutine.
//
// Providers that register a single callback URL use BindRequired, which
// refuses to fall back to a different port.
package loopback
