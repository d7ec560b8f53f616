package opssh

import (
	"fmt"

	"github.com/alexflint/go-arg"
	"github.com/nathants/opssh/lib"
)

func init() {
	lib.Commands["config"] = config
	lib.Args["config"] = configArgs{}
}

type configArgs struct {
	lib.SshArgs
}

func (configArgs) Description() string {
	return "\nprint the resolved settings without calling aws\n"
}

func config() {
	var args configArgs
	arg.MustParse(&args)
	s := settings(args.SshArgs)
	out, err := s.Yaml()
	if err != nil {
		lib.Logger.Fatal("error:", err)
	}
	fmt.Print(out)
}
