package common

// RequestIDHeaderName is the HTTP header used to correlate client requests
// with server-side logs.
const RequestIDHeaderName = "X-Request-Id"
