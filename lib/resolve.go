package lib

import (
	"regexp"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Filter holds the compiled host and stack patterns. A nil pattern is inactive.
type Filter struct {
	Host  *regexp.Regexp
	Stack *regexp.Regexp
}

func compilePattern(which, pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	src := pattern
	if !caseSensitive {
		src = "(?i)" + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, &PatternError{Which: which, Pattern: pattern, Err: err}
	}
	return re, nil
}

func CompileFilter(host, stack string, caseSensitive bool) (*Filter, error) {
	hostRe, err := compilePattern("host", host, caseSensitive)
	if err != nil {
		return nil, err
	}
	stackRe, err := compilePattern("stack", stack, caseSensitive)
	if err != nil {
		return nil, err
	}
	return &Filter{Host: hostRe, Stack: stackRe}, nil
}

// absent values never match, even for patterns that accept the empty string
func matches(re *regexp.Regexp, val *string) bool {
	return val != nil && re.MatchString(*val)
}

// Match reports whether r passes the active patterns. The host pattern must
// match both the hostname tag and the name tag.
func (f *Filter) Match(r EC2Record) bool {
	if f.Stack != nil && !matches(f.Stack, r.Stack) {
		return false
	}
	if f.Host != nil && !(matches(f.Host, r.Hostname) && matches(f.Host, r.Name)) {
		return false
	}
	return true
}

type SkipReason string

const (
	SkipNoStack    SkipReason = "not part of any stack"
	SkipNotRunning SkipReason = "not running"
)

// Skip is a record that passed the patterns but was dropped by the running check.
type Skip struct {
	Record EC2Record
	Reason SkipReason
}

func (s Skip) String() string {
	if s.Reason == SkipNoStack {
		return s.Record.DisplayName() + " is " + string(SkipNoStack)
	}
	return s.Record.DisplayName() + " is " + string(SkipNotRunning) + " (" + s.Record.State + ")"
}

type Resolution struct {
	Targets []EC2Record
	Skipped []Skip
}

// Resolve filters records, keeps running ones, and sorts them by name. Records
// without a name sort as the empty string, ahead of named ones.
func Resolve(records []EC2Record, f *Filter) *Resolution {
	res := &Resolution{Targets: []EC2Record{}}
	for _, r := range records {
		if !f.Match(r) {
			continue
		}
		if !r.Running() {
			reason := SkipNotRunning
			if r.Stack == nil {
				reason = SkipNoStack
			}
			res.Skipped = append(res.Skipped, Skip{Record: r, Reason: reason})
			continue
		}
		res.Targets = append(res.Targets, r)
	}
	sort.SliceStable(res.Targets, func(i, j int) bool {
		return aws.ToString(res.Targets[i].Name) < aws.ToString(res.Targets[j].Name)
	})
	return res
}
