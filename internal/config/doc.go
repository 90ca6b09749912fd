// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources keep their non-zero fields, later ones fill gaps):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Remaining empty fields receive defaults. The main entry point is
// [GetStructuredConfig].
package config
