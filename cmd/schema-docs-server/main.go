// Package main boots the schema docs server.
package main

import "github.com/fairyhunter13/schema-docs-server/internal/cli"

func main() {
	cli.Execute()
}
