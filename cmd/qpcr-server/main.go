// cmd/qpcr-server/main.go
package main

import (
	"qpcr/internal/appshell"
	"qpcr/internal/serverapp"
)

func main() { appshell.Serve(serverapp.RunContext) }
