// Package app wires the venue site together: configuration, logging,
// metrics, rate limiting and the HTTP routes serving the contact page,
// the gallery lightbox and the validation API.
package app
