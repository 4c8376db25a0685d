package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"sdgtrack.eurodata.org/internal/models"
)

// Expected header of the cleaned dataset file. Column order is fixed.
var csvHeader = []string{"country", "year", "indicator", "value"}

// LoadCSV reads a cleaned dataset file (country, year, indicator, value) and
// returns a Manager over its contents.
func LoadCSV(path string) (*Manager, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	m, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return m, nil
}

// ReadCSV parses the cleaned dataset from r. Blank value cells are skipped:
// the upstream cleaning step leaves gaps where a statistical office has no
// figure, and a gap must stay a gap rather than become a zero.
func ReadCSV(r io.Reader) (*Manager, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var observations []models.Observation
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if strings.TrimSpace(record[3]) == "" {
			continue
		}

		year, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid year %q", line, record[1])
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value %q", line, record[3])
		}

		observations = append(observations, models.Observation{
			Country:   strings.TrimSpace(record[0]),
			Year:      year,
			Indicator: strings.TrimSpace(record[2]),
			Value:     value,
		})
	}

	return NewManager(observations)
}

func checkHeader(header []string) error {
	if len(header) != len(csvHeader) {
		return fmt.Errorf("expected %d columns %v, got %d", len(csvHeader), csvHeader, len(header))
	}
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("expected column %d to be %q, got %q", i, want, header[i])
		}
	}
	return nil
}
