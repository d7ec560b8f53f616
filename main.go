package main

import (
	"fmt"
	"os"
	"strings"

	_ "github.com/nathants/opssh/cmd/opssh"
	"github.com/nathants/opssh/lib"
)

func usage() {
	for _, name := range lib.CommandNames() {
		fmt.Printf("%-8s %s\n", name, strings.TrimSpace(lib.Args[name].Description()))
	}
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "help" {
		usage()
		os.Exit(0)
	}
	cmd, args := lib.CommandArgs(os.Args)
	os.Args = args
	lib.Commands[cmd]()
}
