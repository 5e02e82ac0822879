package taskio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/calebwray/spanloom/internal/task"
)

// ReadCSV parses the delimited task format: one task per row with columns
// id, title, duration, and an optional whitespace-separated prerequisite
// list. Rows with too few columns or unparseable numbers are skipped with
// a warning rather than failing the whole file; a repeated ID overwrites
// the earlier row.
func ReadCSV(r io.Reader) (task.Set, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // prerequisite column is optional

	set := make(task.Set)
	line := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++

		if len(row) < 3 {
			log.Warn("skipping row: too few columns", "line", line, "columns", len(row))
			continue
		}

		id := task.ID(strings.TrimSpace(row[0]))
		if id == "" {
			log.Warn("skipping row: empty task id", "line", line)
			continue
		}

		duration, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			log.Warn("skipping row: bad duration", "line", line, "id", id, "duration", row[2])
			continue
		}

		var prereqs []task.ID
		if len(row) > 3 {
			for _, f := range strings.Fields(row[3]) {
				prereqs = append(prereqs, task.ID(f))
			}
		}

		if _, dup := set[id]; dup {
			log.Warn("duplicate task id, keeping later row", "line", line, "id", id)
		}
		set[id] = task.Task{Title: row[1], Duration: duration, Prereqs: prereqs}
	}

	return set, nil
}
