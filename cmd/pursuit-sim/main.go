package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/pursuit.go/pkg/cli/sh"
	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1"
	connector "github.com/robotalks/pursuit.go/pkg/l1/env/connector"
	env "github.com/robotalks/pursuit.go/pkg/l1/env/controller"
	"github.com/robotalks/pursuit.go/pkg/l1/msgs"
	bot "github.com/robotalks/pursuit.go/pkg/sim/bots/pursuit"
	"github.com/robotalks/pursuit.go/pkg/sim/motion"
	"github.com/robotalks/pursuit.go/pkg/sim/visualization/see"

	_ "github.com/robotalks/pursuit.go/pkg/cli/cmds/pursuit"
)

var (
	enableSee bool
	console   bool
)

func init() {
	env.SetControllerType("pursuit", l1.ControllerMeta{Description: "Simulation: steering and pure pursuit"})
	env.SetupFlags()
	motion.SetupFlags()
	bot.SetupFlags()
	see.SetupFlags()
	flag.BoolVar(&enableSee, "see", enableSee, "Write visualization messages to stdout.")
	flag.BoolVar(&console, "console", console, "Run interactive console.")
}

func main() {
	flag.Parse()

	motionConf := motion.NewConfig()
	if err := motionConf.Load(); err != nil {
		glog.Fatal(err)
	}
	envConf := env.NewConfig()
	e := envConf.MustNewEnv()
	botConf := bot.NewConfig()
	ctl := botConf.NewController(e, motionConf)
	loop := fx.NewLoop().WithRate(botConf.TickRate).Add(e, ctl)
	if enableSee {
		see.NewConfig().NewAdapter().Subscribe(ctl)
	}
	glog.Infof("%s session %s, registries %v", ctl.Name(), ctl.Session, e.RegistryURLs)

	args := flag.Args()
	if !console && len(args) == 0 {
		loop.RunOrFail()
		return
	}

	runner := fx.NewRunner().HandleSignals().Go(loop)
	conn := l1.NewLocalConn(loop)
	conn.ErrorOf = msgs.ReplyError
	shell := sh.New(connector.NewConfig()).WithLocal(envConf.Info.Ref, conn)
	shellErr := shell.Run(args...)
	if len(args) == 0 || shellErr != nil {
		runner.Stop()
	}
	if err := runner.Wait(); err != nil {
		glog.Fatal(err)
	}
	if shellErr != nil {
		glog.Fatal(shellErr)
	}
}
