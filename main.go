// Package main provides the gridstats CLI application.
// gridstats manages the lifecycle of a PostgreSQL database of
// American football statistics.
package main

import (
	"github.com/sportsdb/gridstats/cmd"
)

func main() {
	cmd.Execute()
}
