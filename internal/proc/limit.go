package proc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sourcegraph/mlock-go/internal/command"
)

// Limit is a locked-memory resource limit: either a finite number of kilobytes
// or unlimited.
type Limit struct {
	Kb        uint64
	Unlimited bool
}

func (l Limit) String() string {
	if l.Unlimited {
		return "unlimited"
	}

	return strconv.FormatUint(l.Kb, 10)
}

// MemlockLimit holds the soft and hard locked-memory limits for the system.
type MemlockLimit struct {
	Soft Limit
	Hard Limit
}

// ReadMemlockLimit queries the system's locked-memory limits by invoking prlimit.
// This runs once at startup; failure to invoke or parse is an unrecoverable
// setup fault for the caller.
func ReadMemlockLimit() (MemlockLimit, error) {
	output, err := command.Run("", "prlimit", "--memlock", "--output=SOFT,HARD", "--noheadings")
	if err != nil {
		return MemlockLimit{}, errors.Wrap(err, "prlimit")
	}

	return parseMemlockOutput(output)
}

// parseMemlockOutput parses prlimit output of the form `65536 unlimited`, two
// whitespace-separated tokens for the soft and hard limits.
func parseMemlockOutput(output string) (MemlockLimit, error) {
	fields := strings.Fields(output)
	if len(fields) < 2 {
		return MemlockLimit{}, fmt.Errorf("unexpected prlimit output: %q", output)
	}

	soft, err := parseLimit(fields[0])
	if err != nil {
		return MemlockLimit{}, err
	}

	hard, err := parseLimit(fields[1])
	if err != nil {
		return MemlockLimit{}, err
	}

	return MemlockLimit{Soft: soft, Hard: hard}, nil
}

// parseLimit converts a single prlimit token, either the literal "unlimited" or
// a byte count, into a Limit in kilobytes.
func parseLimit(token string) (Limit, error) {
	if token == "unlimited" {
		return Limit{Unlimited: true}, nil
	}

	bytes, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return Limit{}, fmt.Errorf("unexpected prlimit value: %q", token)
	}

	return Limit{Kb: bytes / 1024}, nil
}
