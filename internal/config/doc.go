// Package config provides configuration structures and utilities for
// genstandards: where the index page comes from, where it is cached and
// where the reports are written.
package config
