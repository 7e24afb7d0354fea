// Package debug holds the logger shared by the kaolin packages.
//
// Logging is a no-op until a logger is installed with [SetLogger], or until
// [Init] points it at a file. The kaolin CLI calls Init when the KAOLIN_DEBUG
// environment variable is set to a file path.
package debug
