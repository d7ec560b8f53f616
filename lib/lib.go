package lib

import (
	"sort"
)

const Version = "0.1.0"

const DefaultCommand = "ssh"

func CommandNames() []string {
	var names []string
	for k := range Commands {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// CommandArgs splits argv into the command to run and the args go-arg should
// see, with the command name in place of the program name. The default
// command is used when argv[1] is not a registered command.
func CommandArgs(argv []string) (string, []string) {
	cmd := DefaultCommand
	rest := argv[1:]
	if len(rest) > 0 {
		if _, ok := Commands[rest[0]]; ok {
			cmd = rest[0]
			rest = rest[1:]
		}
	}
	return cmd, append([]string{cmd}, ExpandArgs(rest)...)
}
