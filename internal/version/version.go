// Package version holds the build version, overridden at link time:
//
//	go build -ldflags "-X qpcr/internal/version.Version=1.2.0" ./cmd/...
package version

var Version = "dev"
