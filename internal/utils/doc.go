// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for hashing, constant-time digest comparison and
// time-ordered identifier generation.
package utils
