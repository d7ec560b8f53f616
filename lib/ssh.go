package lib

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// ExecFunc replaces the current process. syscall.Exec satisfies it.
type ExecFunc func(argv0 string, argv []string, envv []string) error

var SyscallExec ExecFunc = syscall.Exec

// SshTarget is the terminal action of a connect run.
type SshTarget struct {
	User    string
	Address string
	Name    string
}

func (t *SshTarget) Login() string {
	return t.User + "@" + t.Address
}

func (t *SshTarget) Argv() []string {
	return []string{"ssh", t.Login()}
}

// SshExec hands the process over to the local ssh client. On success execFn
// does not return.
func SshExec(t *SshTarget, execFn ExecFunc) error {
	argv := t.Argv()
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("command not found: %s", argv[0])
	}
	return execFn(path, argv, os.Environ())
}
