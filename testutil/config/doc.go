// Package config provides PostgreSQL connection configuration for paper
// registry tests, with a pre-configured test database DSN that can be
// overridden through the environment.
package config
