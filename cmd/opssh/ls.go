package opssh

import (
	"github.com/alexflint/go-arg"
	"github.com/nathants/opssh/lib"
)

func init() {
	lib.Commands["ls"] = ls
	lib.Args["ls"] = lsArgs{}
}

type lsArgs struct {
	lib.SshArgs
}

func (lsArgs) Description() string {
	return "\nlist running instances matching host and stack as ssh lines\n"
}

func ls() {
	var args lsArgs
	arg.MustParse(&args)
	args.ShowOnly = true
	run(settings(args.SshArgs))
}
