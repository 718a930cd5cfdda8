// Package config loads, merges and validates the configuration of the
// cipher-chat server and CLI.
//
// The server configuration is assembled from several sources; for every
// field the first source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
