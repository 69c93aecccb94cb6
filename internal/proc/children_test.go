package proc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testPsOutput = `
UID          PID    PPID  C STIME TTY          TIME CMD
root        4212    4200  0 10:42 pts/0    00:00:01 /usr/local/go/pkg/tool/linux_amd64/compile -o /tmp/b001/_pkg_.a
root        4213    4200  0 10:42 pts/0    00:00:00 /usr/local/go/pkg/tool/linux_amd64/link -o /tmp/b001/test.out
root        4214    4200  2 10:42 pts/0    00:00:00 /tmp/go-build2145/b001/mlock.test -test.timeout=10m0s
root        4215    4200  0 10:42 pts/0    00:00:00 sleeper 30
`

func TestParsePsOutput(t *testing.T) {
	children := parsePsOutput(strings.TrimSpace(testPsOutput))

	expected := []Child{
		{Pid: 4214, Name: "mlock.test"},
		{Pid: 4215, Name: "sleeper"},
	}
	if diff := cmp.Diff(expected, children); diff != "" {
		t.Errorf("unexpected children (-want +got): %s", diff)
	}
}

func TestParsePsOutputHeaderOnly(t *testing.T) {
	children := parsePsOutput("UID          PID    PPID  C STIME TTY          TIME CMD")
	if len(children) != 0 {
		t.Errorf("unexpected children. want=%d have=%d", 0, len(children))
	}
}

func TestParsePsOutputSkipsMalformedRows(t *testing.T) {
	output := strings.Join([]string{
		"UID          PID    PPID  C STIME TTY          TIME CMD",
		"root        oops    4200  0 10:42 pts/0    00:00:00 /bin/sleeper",
		"root        4216",
		"root        4217    4200  0 10:42 pts/0    00:00:00 /bin/sleeper",
	}, "\n")

	children := parsePsOutput(output)

	expected := []Child{
		{Pid: 4217, Name: "sleeper"},
	}
	if diff := cmp.Diff(expected, children); diff != "" {
		t.Errorf("unexpected children (-want +got): %s", diff)
	}
}
