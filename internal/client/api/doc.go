// Package api implements the HTTP client for the marketplace REST API.
//
// Every outbound request passes through an explicit middleware chain built
// from http.RoundTripper decorators, in order:
//
//  1. request-id  — stamps X-Request-Id with a fresh UUID,
//  2. bearer      — attaches "Authorization: Bearer <token>" when the bound
//     token source currently yields one,
//  3. dispatch    — the underlying transport,
//  4. inspect     — on an HTTP 401 clears the persisted session keys and
//     triggers the navigator's login redirect.
//
// The 401 handling is terminal: the pipeline never retries the original
// request and never attempts a token refresh. Responses other than 401 pass
// through unmodified; business-level error bodies are left to the caller.
//
// Typed endpoint bindings (auth, needs, bids, conversations, users) live in
// their own files and all go through the same (*Client).do entry point.
package api
