// Package app holds application-wide identifiers.
package app

// Name is the application name, used for the binary, the config directory
// and log file naming.
const Name = "pomo"
