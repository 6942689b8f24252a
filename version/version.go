// Package version holds the build version, set with
// -ldflags "-X github.com/snakearcade/engine/version.Version=...".
package version

// Version is the released version of the snake binary.
var Version = "dev"
