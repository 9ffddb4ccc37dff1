// Package app defines the runtime contract of the gateway binaries. The
// subpackages hold the API server, the shared service wiring and the HTTP
// plumbing.
package app

// Runner is a long running process started by a cmd binary.
type Runner interface {
	Run() error
}
