package proc

import (
	"os"
	"strconv"
	"strings"
)

// LockedMemory reads the VmLck line of a process's status pseudo-file and returns
// the currently locked kilobytes. The second return value is false if the process
// has exited, the field is absent, or the value does not parse; a process exiting
// between discovery and sampling is an expected race, not an error.
func LockedMemory(pid int) (uint64, bool) {
	buf, err := os.ReadFile("/proc/" + strconv.Itoa(pid) + "/status")
	if err != nil {
		return 0, false
	}

	return parseStatus(string(buf))
}

// parseStatus scans status-file content for the locked-memory field. The line has
// the form `VmLck:	      12 kB`.
func parseStatus(content string) (uint64, bool) {
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, "VmLck:") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}

		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, false
		}

		return kb, true
	}

	return 0, false
}
