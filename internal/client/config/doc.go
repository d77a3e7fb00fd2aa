// Package config loads the CLI's runtime settings: defaults first, then
// an optional JSON file, then command-line flags, each layer overriding
// the previous one.
package config
