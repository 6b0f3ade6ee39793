package main

import (
	"github.com/robotalks/pursuit.go/pkg/cli/sh"
	env "github.com/robotalks/pursuit.go/pkg/l1/env/connector"

	_ "github.com/robotalks/pursuit.go/pkg/cli/cmds/pursuit"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}
