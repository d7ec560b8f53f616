package opssh

import (
	"context"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/nathants/opssh/lib"
)

func init() {
	lib.Commands["ssh"] = ssh
	lib.Args["ssh"] = sshArgs{}
}

type sshArgs struct {
	lib.SshArgs
}

func (sshArgs) Description() string {
	return "\nssh to the single running instance matching host and stack, or list matches with --show-only\n"
}

func (sshArgs) Version() string {
	return "opssh " + lib.Version
}

func ssh() {
	var args sshArgs
	arg.MustParse(&args)
	run(settings(args.SshArgs))
}

func settings(args lib.SshArgs) *lib.Settings {
	lib.Logger.SetVerbose(args.Verbose)
	file, err := lib.LoadFileConfig(lib.ConfigPath(args.Config))
	if err != nil {
		lib.Logger.Fatal("error:", err)
	}
	s, err := lib.ResolveSettings(args, file, os.Getenv)
	if err != nil {
		lib.Logger.Fatal("error:", err)
	}
	return s
}

func run(s *lib.Settings) {
	ctx := context.Background()
	cfg, err := lib.Session(ctx, s.Profile, s.Region)
	if err != nil {
		lib.Logger.Fatal("error:", err)
	}
	records, err := lib.EC2ListRecords(ctx, lib.EC2Client(cfg))
	if err != nil {
		lib.Logger.Fatal("error:", err)
	}
	lib.Logger.Debugf("described %d instances in %s", len(records), s.Region)
	target, err := lib.Plan(os.Stdout, records, s)
	if err != nil {
		lib.Logger.Fatal("error:", err)
	}
	if target == nil {
		return
	}
	lib.Logger.Debugln("ssh", target.Login(), "=>", target.Name)
	err = lib.SshExec(target, lib.SyscallExec)
	lib.Logger.Fatal("error:", err)
}
