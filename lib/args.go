package lib

import (
	"fmt"
	"strings"
)

var Commands = make(map[string]func())

var Args = make(map[string]interface{ Description() string })

type SshArgs struct {
	Host          string `arg:"positional" help:"hostname regex, matched against both the opsworks:instance and Name tags"`
	Stack         string `arg:"-s,--stack" help:"stack regex, matched against the opsworks:stack tag"`
	Profile       string `arg:"-p,--profile" help:"aws profile, defaults to the config file"`
	Region        string `arg:"-r,--region" help:"aws region, defaults to the config file"`
	User          string `arg:"-u,--user" help:"ssh user, defaults to the config file then $USER"`
	ShowOnly      bool   `arg:"--show-only" help:"print matches instead of connecting (-so)"`
	CaseSensitive bool   `arg:"--csensitive" help:"case sensitive matching (-cs)"`
	Verbose       bool   `arg:"-v,--verbose" help:"report skipped instances"`
	Config        string `arg:"--config" help:"config file, defaults to $OPSSH_CONFIG then ~/.opssh.yaml"`
}

var longShorts = map[string]string{
	"-so": "--show-only",
	"-cs": "--csensitive",
}

// ExpandArgs rewrites the two letter shorthands to their long flags and splits
// bundled single letter flags, -vs becomes -v -s.
func ExpandArgs(args []string) []string {
	var res []string
	for i, a := range args {
		if a == "--" {
			res = append(res, args[i:]...)
			break
		}
		if long, ok := longShorts[a]; ok {
			res = append(res, long)
		} else if len(a) > 2 && a[0] == '-' && a[1] != '-' && !strings.Contains(a, "=") {
			for _, k := range a[1:] {
				res = append(res, fmt.Sprintf("-%s", string(k)))
			}
		} else {
			res = append(res, a)
		}
	}
	return res
}
