package lib

import (
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func SshLogin(user string, r EC2Record) string {
	return user + "@" + aws.ToString(r.PublicIP)
}

// WriteList prints one ssh line per target, then all logins on a single line
// for pasting into a multi-host shell.
func WriteList(w io.Writer, user string, targets []EC2Record) error {
	logins := make([]string, 0, len(targets))
	for _, r := range targets {
		login := SshLogin(user, r)
		_, err := fmt.Fprintf(w, "ssh %s => %s\n", login, aws.ToString(r.Name))
		if err != nil {
			return err
		}
		logins = append(logins, login)
	}
	_, err := fmt.Fprintln(w, strings.Join(logins, " "))
	return err
}
