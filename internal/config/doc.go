// Package config provides configuration loading, merging, and validation
// facilities for the markdo client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML config file
//  3. Environment variables (a .env file is loaded first when present)
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] and [GetClientConfig].
package config
