// Package dataset loads the verse dataset: one row per curated verse,
// linking a scripture reference to the place its subject matter concerns.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ayat-atlas/internal/geom"
)

// ErrLoadFailed marks a dataset that could not be read at all. The
// application treats this as fatal; there is no partial or fallback dataset.
var ErrLoadFailed = errors.New("dataset load failed")

// Record is one dataset row. Identity is (Surah, Ayah). Records are parsed
// once at startup and never mutated.
type Record struct {
	Surah         int
	Ayah          int
	TopicLocation string
	TopicLat      float64
	TopicLon      float64
	Description   string
}

// Label is the selection title shown for this record.
func (r Record) Label() string {
	return fmt.Sprintf("Surah %d, Ayah %d - %s", r.Surah, r.Ayah, r.Description)
}

// TopicPoint returns the record's topic location as a coordinate.
func (r Record) TopicPoint() geom.Point {
	return geom.Point{Lat: r.TopicLat, Lon: r.TopicLon}
}

// Load parses delimited text into records, preserving input order. The
// first line is a header and is skipped without validation. Fields are
// split on bare commas; quoting and embedded delimiters are unsupported,
// so a comma inside a field truncates it. This is not a general CSV parser.
func Load(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
		}
		return nil, fmt.Errorf("%w: empty resource", ErrLoadFailed)
	}

	var records []Record
	line := 1
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		rec, err := parseRow(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrLoadFailed, line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	return records, nil
}

// LoadFile loads the dataset from a file on disk.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer f.Close()

	return Load(f)
}

func parseRow(raw string) (Record, error) {
	fields := strings.Split(raw, ",")
	if len(fields) < 6 {
		return Record{}, fmt.Errorf("expected 6 fields, got %d", len(fields))
	}

	surah, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Record{}, fmt.Errorf("surah number: %v", err)
	}
	ayah, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Record{}, fmt.Errorf("ayah number: %v", err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return Record{}, fmt.Errorf("topic latitude: %v", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return Record{}, fmt.Errorf("topic longitude: %v", err)
	}

	return Record{
		Surah:         surah,
		Ayah:          ayah,
		TopicLocation: strings.TrimSpace(fields[2]),
		TopicLat:      lat,
		TopicLon:      lon,
		Description:   strings.TrimSpace(fields[5]),
	}, nil
}
