// Package http implements the key-value proxy's HTTP transport.
//
// The proxy keeps one dashboard document: GET /api/sync returns it (or
// {"empty":true}), POST /api/sync replaces it when the x-auth-token header
// carries a valid write token. Request tracing, access logging, response
// compression and storage availability checks run as middleware before a
// request reaches the service layer.
package http
