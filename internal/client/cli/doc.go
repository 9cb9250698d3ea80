// Package cli implements the interactive terminal client for the
// needmarket marketplace.
//
// The REPL drives everything: logged out, the user can register or log in;
// logged in, they can browse and post needs, place and review bids, read and
// send messages, and view or edit their profile. The logged-out prompt is
// also the login surface the request pipeline navigates to when a response
// invalidates the session.
//
// Interactive input goes through small helpers with package-level function
// vars as test seams, so command handlers are testable without a terminal.
package cli
