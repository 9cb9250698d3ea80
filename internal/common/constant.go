package common

// AuthHeaderName is the HTTP header used to carry the bearer credential
// on outbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is prepended to the token in the auth header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries the client-generated id of each outbound
// request, for server-side correlation.
const RequestIDHeaderName = "X-Request-Id"

// MinPasswordLength is the minimum accepted password length, checked by the
// UI layer before a register call is issued.
const MinPasswordLength = 8
