// cmd/qpcr/main.go
package main

import (
	"qpcr/internal/appshell"
	"qpcr/internal/designapp"
)

func main() { appshell.Main(designapp.RunContext) }
