package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// evictionColumns is the CSV header row for exported eviction traces.
var evictionColumns = []string{"index", "page", "victim", "dirty"}

// ExportCSV writes the collected eviction records to a CSV file, one row per
// eviction, for offline policy comparison.
func ExportCSV(st *SimulationTrace, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating eviction trace file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(evictionColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range st.Evictions {
		row := []string{
			strconv.FormatInt(r.Index, 10),
			string(r.Page),
			string(r.Victim),
			strconv.FormatBool(r.Dirty),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for reference %d: %w", r.Index, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing eviction trace: %w", err)
	}
	return nil
}
