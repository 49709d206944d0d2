// Package server runs the key-value proxy's HTTP listener.
//
// It owns startup, signal handling and graceful shutdown. SIGINT, SIGTERM
// and SIGQUIT stop the listener and let in-flight requests finish within
// the shutdown timeout.
package server
