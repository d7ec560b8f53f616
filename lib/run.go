package lib

import (
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dustin/go-humanize"
)

// Plan resolves records against the settings. In show-only mode it writes the
// list to w and returns nil. Otherwise it returns the single ssh target, or
// writes the list and fails when more than one host matched.
func Plan(w io.Writer, records []EC2Record, s *Settings) (*SshTarget, error) {
	filter, err := CompileFilter(s.Host, s.Stack, s.CaseSensitive)
	if err != nil {
		return nil, err
	}
	res := Resolve(records, filter)
	for _, skip := range res.Skipped {
		Logger.Debugln(skip.String())
	}
	for _, r := range res.Targets {
		if r.LaunchTime != nil {
			Logger.Debugf("matched %s %s launched %s", r.DisplayName(), r.InstanceID, humanize.Time(*r.LaunchTime))
		} else {
			Logger.Debugf("matched %s %s", r.DisplayName(), r.InstanceID)
		}
	}
	if s.ShowOnly {
		return nil, WriteList(w, s.User, res.Targets)
	}
	switch len(res.Targets) {
	case 0:
		return nil, &NoMatchError{}
	case 1:
		r := res.Targets[0]
		if r.PublicIP == nil || *r.PublicIP == "" {
			return nil, &NoAddressError{Name: r.DisplayName()}
		}
		return &SshTarget{
			User:    s.User,
			Address: aws.ToString(r.PublicIP),
			Name:    aws.ToString(r.Name),
		}, nil
	default:
		err := WriteList(w, s.User, res.Targets)
		if err != nil {
			return nil, err
		}
		return nil, &AmbiguousTargetError{Count: len(res.Targets)}
	}
}
