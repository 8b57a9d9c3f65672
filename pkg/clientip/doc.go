// Package clientip resolves the originating client address of an HTTP
// request. It is used to key per-visitor rate limits on the contact form.
//
// Forwarding headers are only honoured when the service runs behind a proxy
// that sets them; otherwise any visitor could pick their own rate-limit key.
// Resolver.TrustProxyHeaders controls this. Headers are consulted in order:
// CF-Connecting-IP, X-Forwarded-For (first valid entry), X-Real-IP, and
// finally RemoteAddr.
package clientip
