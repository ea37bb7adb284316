// Package main is the entry point for dsbox.
package main

import (
	"github.com/dsbox/dsbox/cmd"
	"github.com/dsbox/dsbox/config"
	"github.com/dsbox/dsbox/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
