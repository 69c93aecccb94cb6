package monitor

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// columnBuffer is the number of spaces separating the table columns.
const columnBuffer = 8

const (
	nameHeading = "Process Name"
	peakHeading = "Max Locked Memory (kb)"
)

// Record tracks one monitored process: its name and the highest locked-memory
// reading observed for it so far.
type Record struct {
	Name   string
	PeakKb uint64
}

// Database maps each observed child pid to its record. Records are never removed;
// a process that exits keeps its peak for the final report. All operations are
// safe for concurrent use — the database is the single point of mutual exclusion
// between the two workers and the coordinator.
type Database struct {
	mutex   sync.Mutex
	records map[int]*Record
}

func NewDatabase() *Database {
	return &Database{records: map[int]*Record{}}
}

// Contains returns true if the given pid has been registered.
func (db *Database) Contains(pid int) bool {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	_, ok := db.records[pid]
	return ok
}

// Register inserts a record with a zero peak for a newly discovered process. It
// is idempotent: a pid rediscovered on a later poll leaves its record untouched.
func (db *Database) Register(pid int, name string) {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	if _, ok := db.records[pid]; ok {
		return
	}

	db.records[pid] = &Record{Name: name}
}

// Sample folds a locked-memory reading into the record's peak, which never
// decreases. A sample for an unregistered pid is dropped silently; samples can
// race ahead of registration and that is tolerated, not an error.
func (db *Database) Sample(pid int, kb uint64) {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	record, ok := db.records[pid]
	if !ok {
		return
	}

	if kb > record.PeakKb {
		record.PeakKb = kb
	}
}

// Records returns a copy of the database contents keyed by pid.
func (db *Database) Records() map[int]Record {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	records := make(map[int]Record, len(db.records))
	for pid, record := range db.records {
		records[pid] = *record
	}

	return records
}

// Render formats the database as a two-column table ordered by pid. The second
// column starts after the longest process name plus the column buffer, with the
// first heading's width as a floor, so every row and the border lines align.
func (db *Database) Render() string {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	pids := make([]int, 0, len(db.records))
	for pid := range db.records {
		pids = append(pids, pid)
	}
	sort.Ints(pids)

	peakColumn := len(nameHeading) + columnBuffer
	for _, record := range db.records {
		if n := len(record.Name) + columnBuffer; n > peakColumn {
			peakColumn = n
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(nameHeading)
	sb.WriteString(strings.Repeat(" ", peakColumn-len(nameHeading)))
	sb.WriteString(peakHeading)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", len(nameHeading)))
	sb.WriteString(strings.Repeat(" ", peakColumn-len(nameHeading)))
	sb.WriteString(strings.Repeat("=", len(peakHeading)))
	sb.WriteString("\n")

	for _, pid := range pids {
		record := db.records[pid]
		sb.WriteString(record.Name)
		sb.WriteString(strings.Repeat(" ", peakColumn-len(record.Name)))
		sb.WriteString(strconv.FormatUint(record.PeakKb, 10))
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat("=", peakColumn+len(peakHeading)))
	return sb.String()
}
