// Package csvimport parses activity catalog CSV files into domain
// entries. Pure function: reader in, domain structs out. No database
// dependencies.
package csvimport

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// Column names recognised in the header row. Order in the file is free.
const (
	colTitle           = "title"
	colDescription     = "description"
	colLocation        = "location"
	colCountry         = "country"
	colCategory        = "category"
	colDuration        = "typical_duration_minutes"
	colCost            = "average_cost"
	colTags            = "tags"
	colIsPopular       = "is_popular"
	colRecommendedTime = "recommended_time"
)

var requiredColumns = []string{colTitle, colLocation, colCountry, colCategory}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]domain.CatalogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a catalog CSV with a header row. The delimiter is ',' or ';',
// detected from the header. Empty numeric and time cells become nil.
// Every malformed row is reported; any error rejects the whole file.
func Parse(r io.Reader) ([]domain.CatalogEntry, error) {
	br := bufio.NewReader(r)

	reader := csv.NewReader(br)
	reader.Comma = detectDelimiter(br)
	reader.FieldsPerRecord = -1 // checked per row against the header
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []domain.CatalogEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	entries := []domain.CatalogEntry{}
	var errs []domain.FieldError

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		entry, msg := cols.entry(record)
		if msg != "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("row %d", line), Message: msg})
			continue
		}
		entries = append(entries, entry)
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return entries, nil
}

// detectDelimiter peeks at the first line and picks ';' when it outnumbers ','.
func detectDelimiter(br *bufio.Reader) rune {
	head, _ := br.Peek(4096)
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	if bytes.Count(head, []byte{';'}) > bytes.Count(head, []byte{','}) {
		return ';'
	}
	return ','
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Header mapping
// ---------------------------------------------------------------------------

type columns map[string]int

func indexHeader(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if name == "" {
			continue
		}
		cols[name] = i
	}

	var errs []domain.FieldError
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			errs = append(errs, domain.FieldError{Field: "header", Message: "missing column " + c})
		}
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return cols, nil
}

// get returns the trimmed cell for name, or "" when the column or cell is absent.
func (c columns) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// entry converts one record. A non-empty message describes the first problem.
func (c columns) entry(record []string) (domain.CatalogEntry, string) {
	e := domain.CatalogEntry{
		Title:    domain.NormalizeLabel(c.get(record, colTitle)),
		Location: domain.NormalizeLabel(c.get(record, colLocation)),
		Country:  domain.NormalizeLabel(c.get(record, colCountry)),
		Category: domain.NormalizeLabel(c.get(record, colCategory)),
		Tags:     domain.JoinTags(domain.SplitTags(c.get(record, colTags))),
	}

	for _, req := range []struct{ name, value string }{
		{colTitle, e.Title},
		{colLocation, e.Location},
		{colCountry, e.Country},
		{colCategory, e.Category},
	} {
		if req.value == "" {
			return e, req.name + " is required"
		}
	}

	if v := c.get(record, colDescription); v != "" {
		e.Description = &v
	}

	if v := c.get(record, colDuration); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return e, fmt.Sprintf("invalid %s %q", colDuration, v)
		}
		e.TypicalDurationMinutes = &n
	}

	if v := c.get(record, colCost); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return e, fmt.Sprintf("invalid %s %q", colCost, v)
		}
		e.AverageCost = &f
	}

	if v := c.get(record, colIsPopular); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return e, fmt.Sprintf("invalid %s %q", colIsPopular, v)
		}
		e.IsPopular = b
	}

	if v := c.get(record, colRecommendedTime); v != "" {
		hm, ok := parseTimeOfDay(v)
		if !ok {
			return e, fmt.Sprintf("invalid %s %q, want HH:MM", colRecommendedTime, v)
		}
		e.RecommendedTime = &hm
	}

	return e, ""
}

// parseTimeOfDay accepts "HH:MM" and "HH:MM:SS" and returns "HH:MM".
func parseTimeOfDay(v string) (string, bool) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}
