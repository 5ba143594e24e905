// Package config defines the application's configuration structure
// and loading mechanism.
package config
