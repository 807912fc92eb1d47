// Package config provides configuration loading, merging, and validation
// for the movie server and the offline-first client.
//
// Configuration is assembled from several sources. For every field the
// first source that sets it wins:
//  1. Environment variables, after an optional .env file is loaded
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] for the movie server and
// [GetClientConfig] for the client.
package config
