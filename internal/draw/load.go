package draw

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the date format used by the official results export.
const DateLayout = "02/01/2006"

// Column names as exported by the official results spreadsheet.
const (
	contestColumn = "Concurso"
	dateColumn    = "Data"
)

var ballColumns = [Size]string{"bola 1", "bola 2", "bola 3", "bola 4", "bola 5", "bola 6"}

// LoadOptions controls how malformed rows are handled.
type LoadOptions struct {
	// Strict aborts on the first malformed row instead of skipping it.
	Strict bool
}

// RecordError describes a malformed row in the input file.
type RecordError struct {
	Row int // 1-based row number, header included
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Load parses every draw row from the CSV file at path and returns the
// history sorted by date ascending. In lenient mode malformed rows are
// skipped and counted; in strict mode the first malformed row aborts the
// load with its row number.
func Load(path string, opts LoadOptions) (History, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open draw file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, 0, fmt.Errorf("%s: draw file is empty", path)
		}
		return nil, 0, fmt.Errorf("%s: failed to read header: %w", path, err)
	}
	columns, err := resolveColumns(header)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	var history History
	skipped := 0
	row := 1 // header was row 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			if opts.Strict {
				return nil, skipped, fmt.Errorf("%s: %w", path, &RecordError{Row: row, Err: err})
			}
			skipped++
			continue
		}
		record, err := parseRecord(fields, columns)
		if err != nil {
			if opts.Strict {
				return nil, skipped, fmt.Errorf("%s: %w", path, &RecordError{Row: row, Err: err})
			}
			skipped++
			continue
		}
		history = append(history, record)
	}

	if len(history) == 0 {
		return nil, skipped, fmt.Errorf("%s: no valid draw records", path)
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})
	return history, skipped, nil
}

type columnIndex struct {
	contest int // -1 when absent
	date    int
	balls   [Size]int
}

func resolveColumns(header []string) (columnIndex, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[strings.ToLower(strings.TrimSpace(name))] = i
	}
	idx := columnIndex{contest: -1}
	if i, ok := byName[strings.ToLower(contestColumn)]; ok {
		idx.contest = i
	}
	i, ok := byName[strings.ToLower(dateColumn)]
	if !ok {
		return columnIndex{}, fmt.Errorf("missing %q column", dateColumn)
	}
	idx.date = i
	for b, name := range ballColumns {
		i, ok := byName[name]
		if !ok {
			return columnIndex{}, fmt.Errorf("missing %q column", name)
		}
		idx.balls[b] = i
	}
	return idx, nil
}

func parseRecord(fields []string, columns columnIndex) (Record, error) {
	var record Record
	if columns.contest >= 0 && columns.contest < len(fields) {
		if contest, err := strconv.Atoi(strings.TrimSpace(fields[columns.contest])); err == nil {
			record.Contest = contest
		}
	}

	if columns.date >= len(fields) {
		return Record{}, fmt.Errorf("missing draw date")
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(fields[columns.date]))
	if err != nil {
		return Record{}, fmt.Errorf("invalid draw date: %w", err)
	}
	record.Date = date

	var seen [MaxNumber + 1]bool
	for b, col := range columns.balls {
		if col >= len(fields) {
			return Record{}, fmt.Errorf("missing %q value", ballColumns[b])
		}
		n, err := strconv.Atoi(strings.TrimSpace(fields[col]))
		if err != nil {
			return Record{}, fmt.Errorf("invalid %q value: %w", ballColumns[b], err)
		}
		if n < MinNumber || n > MaxNumber {
			return Record{}, fmt.Errorf("number %d out of range [%d, %d]", n, MinNumber, MaxNumber)
		}
		if seen[n] {
			return Record{}, fmt.Errorf("duplicate number %d", n)
		}
		seen[n] = true
		record.Numbers[b] = n
	}
	sort.Ints(record.Numbers[:])
	return record, nil
}
