package proc

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sourcegraph/mlock-go/internal/command"
)

// Child identifies one direct child of a monitored process.
type Child struct {
	Pid  int
	Name string
}

// ignoredChildren are toolchain helper processes spawned by `go test` that lock
// no memory of their own and would only clutter the report.
var ignoredChildren = map[string]struct{}{
	"compile": {},
	"link":    {},
	"asm":     {},
	"cgo":     {},
	"vet":     {},
}

// Children lists the direct children of the given pid by invoking ps filtered by
// parent pid. A pid with no children yields an empty slice: ps exits non-zero
// when nothing matches the filter, so only a failure to invoke ps at all is an
// error.
func Children(ppid int) ([]Child, error) {
	output, err := command.Run("", "ps", "-f", "--ppid", strconv.Itoa(ppid))
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return nil, nil
		}

		return nil, errors.Wrap(err, "ps")
	}

	return parsePsOutput(output), nil
}

// parsePsOutput parses the output of `ps -f`. The first line is a column heading;
// each remaining line holds the pid in the second field and the command in the
// eighth. The command is reduced to its executable base name. Rows that do not
// match this layout are skipped rather than failing the whole snapshot.
func parsePsOutput(output string) []Child {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 2 {
		return nil
	}

	children := make([]Child, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 8 {
			continue
		}

		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		name := fields[7]
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}

		if _, ok := ignoredChildren[name]; ok {
			continue
		}

		children = append(children, Child{Pid: pid, Name: name})
	}

	return children
}
