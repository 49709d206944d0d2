// Package config provides configuration loading, merging, and validation
// for the FlatNav client and the key-value proxy server.
//
// Configuration is assembled from several sources; later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Config file (JSON or TOML, chosen by extension)
//
// The entry points are [GetClientConfig] and [GetServerConfig]. Both take
// the flag values bound by [BindClientFlags] or [BindServerFlags].
package config
