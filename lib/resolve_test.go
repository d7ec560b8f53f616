package lib

import (
	"sort"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name, hostname, stack, state, ip string) EC2Record {
	r := EC2Record{InstanceID: "i-" + name, State: state}
	if name != "" {
		r.Name = aws.String(name)
	}
	if hostname != "" {
		r.Hostname = aws.String(hostname)
	}
	if stack != "" {
		r.Stack = aws.String(stack)
	}
	if ip != "" {
		r.PublicIP = aws.String(ip)
	}
	return r
}

func names(records []EC2Record) []string {
	res := []string{}
	for _, r := range records {
		res = append(res, aws.ToString(r.Name))
	}
	return res
}

func mustFilter(t *testing.T, host, stack string, caseSensitive bool) *Filter {
	f, err := CompileFilter(host, stack, caseSensitive)
	require.NoError(t, err)
	return f
}

func TestResolveScenario(t *testing.T) {
	a := record("prod-app1", "prod-app1", "Production", "running", "10.0.0.1")
	b := record("prod-app2", "prod-app2", "Production", "stopped", "10.0.0.2")
	res := Resolve([]EC2Record{a, b}, mustFilter(t, "prod", "prod", false))
	assert.Equal(t, []string{"prod-app1"}, names(res.Targets))
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, SkipNotRunning, res.Skipped[0].Reason)
	assert.Equal(t, "prod-app2 is not running (stopped)", res.Skipped[0].String())
}

func TestResolveNeverReturnsStoppedInstances(t *testing.T) {
	states := []string{"pending", "stopping", "stopped", "shutting-down", "terminated", "Running", ""}
	var records []EC2Record
	for _, s := range states {
		records = append(records, record("web-"+s, "web", "web", s, "1.1.1.1"))
	}
	for _, f := range []*Filter{mustFilter(t, "", "", false), mustFilter(t, "web", "web", false)} {
		res := Resolve(records, f)
		assert.Empty(t, res.Targets)
		assert.Len(t, res.Skipped, len(states))
	}
}

func TestResolveHostMustMatchBothFields(t *testing.T) {
	records := []EC2Record{
		record("app1", "app1", "s", "running", "1.1.1.1"),
		record("app2", "", "s", "running", "1.1.1.2"),
		record("", "app3", "s", "running", "1.1.1.3"),
		record("app4", "db4", "s", "running", "1.1.1.4"),
	}
	res := Resolve(records, mustFilter(t, "app", "", false))
	assert.Equal(t, []string{"app1"}, names(res.Targets))

	// an absent tag is excluded even by a pattern that accepts anything
	res = Resolve(records, mustFilter(t, ".*", "", false))
	assert.Equal(t, []string{"app1", "app4"}, names(res.Targets))
}

func TestResolveStackFilter(t *testing.T) {
	records := []EC2Record{
		record("a", "a", "production", "running", "1.1.1.1"),
		record("b", "b", "staging", "running", "1.1.1.2"),
		record("c", "c", "", "running", "1.1.1.3"),
	}
	res := Resolve(records, mustFilter(t, "", "prod", false))
	assert.Equal(t, []string{"a"}, names(res.Targets))

	res = Resolve(records, mustFilter(t, "", "", false))
	assert.Equal(t, []string{"a", "b", "c"}, names(res.Targets))
}

func TestResolveCaseSensitivity(t *testing.T) {
	records := []EC2Record{record("a", "a", "production", "running", "1.1.1.1")}
	res := Resolve(records, mustFilter(t, "", "PROD", false))
	assert.Len(t, res.Targets, 1)
	res = Resolve(records, mustFilter(t, "", "PROD", true))
	assert.Empty(t, res.Targets)
	res = Resolve(records, mustFilter(t, "", "prod", true))
	assert.Len(t, res.Targets, 1)
}

func TestResolveSkipReasons(t *testing.T) {
	records := []EC2Record{
		record("nostack", "nostack", "", "stopped", ""),
		record("stopped", "stopped", "web", "stopped", ""),
	}
	res := Resolve(records, mustFilter(t, "", "", false))
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, SkipNoStack, res.Skipped[0].Reason)
	assert.Equal(t, "nostack is not part of any stack", res.Skipped[0].String())
	assert.Equal(t, SkipNotRunning, res.Skipped[1].Reason)
}

func TestResolveFilteredOutRecordsAreNotSkips(t *testing.T) {
	records := []EC2Record{record("db", "db", "data", "stopped", "")}
	res := Resolve(records, mustFilter(t, "web", "", false))
	assert.Empty(t, res.Targets)
	assert.Empty(t, res.Skipped)
}

func TestResolveSortsByName(t *testing.T) {
	records := []EC2Record{
		record("web-3", "web-3", "s", "running", "1.1.1.3"),
		record("", "", "s", "running", "1.1.1.9"),
		record("web-1", "web-1", "s", "running", "1.1.1.1"),
		record("db-1", "db-1", "s", "stopped", "1.1.1.4"),
		record("app-2", "app-2", "s", "running", "1.1.1.2"),
	}
	res := Resolve(records, mustFilter(t, "", "", false))
	got := names(res.Targets)
	assert.Equal(t, []string{"", "app-2", "web-1", "web-3"}, got)
	assert.True(t, sort.StringsAreSorted(got))
	for _, r := range res.Targets {
		assert.True(t, r.Running())
	}
}

func TestResolveEmptyInput(t *testing.T) {
	res := Resolve(nil, mustFilter(t, "x", "y", false))
	assert.NotNil(t, res.Targets)
	assert.Empty(t, res.Targets)
	assert.Empty(t, res.Skipped)
}

func TestCompileFilterInvalidPattern(t *testing.T) {
	_, err := CompileFilter("web(", "", false)
	var perr *PatternError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "host", perr.Which)

	_, err = CompileFilter("", "[", true)
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "stack", perr.Which)
}

func TestCompileFilterEmptyPatternsAreInactive(t *testing.T) {
	f := mustFilter(t, "", "", false)
	assert.Nil(t, f.Host)
	assert.Nil(t, f.Stack)
	assert.True(t, f.Match(EC2Record{}))
}
