package nameval

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// NameParseOptions selects which column of a CSV/TSV file holds the
// candidate names. Column may be a header name or a 1-based "#N"
// index; empty means auto-detection against nameColumnCandidates.
type NameParseOptions struct {
	Column string
}

// NameFileMetadata provides header information and the detected name column.
type NameFileMetadata struct {
	Columns   []string
	Suggested string
}

// nameColumnCandidates are the header names recognized during
// auto-detection. This is the documented schema contract for batch
// input: the first matching header wins, otherwise column 1 is used.
var nameColumnCandidates = []string{"name", "名前", "名称", "社名", "サービス名", "カナ", "読み"}

// ParseNameFile reads candidate names from a CSV, TSV or plain text
// file (one name per line for plain text).
func ParseNameFile(path string, opts NameParseOptions) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseDelimitedNames(path, ',', opts)
	case ".tsv":
		return parseDelimitedNames(path, '\t', opts)
	default:
		return parsePlainNames(path)
	}
}

func parsePlainNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open name file: %w", err)
	}
	defer f.Close()
	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := cleanCell(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan name file: %w", err)
	}
	return out, nil
}

func parseDelimitedNames(path string, comma rune, opts NameParseOptions) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty file")
	}
	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cleanCell(cell)
	}
	col, start, err := resolveNameColumn(header, opts.Column)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows)-start)
	for _, row := range rows[start:] {
		if col >= len(row) {
			continue
		}
		value := cleanCell(row[col])
		if value == "" {
			continue
		}
		names = append(names, value)
	}
	return names, nil
}

func resolveNameColumn(header []string, explicit string) (int, int, error) {
	trimmed := strings.TrimSpace(explicit)
	if trimmed != "" {
		idx, fromHeader, err := matchExplicitColumn(header, trimmed)
		if err != nil {
			return -1, 0, err
		}
		start := 0
		if fromHeader {
			start = 1
		}
		return idx, start, nil
	}
	col := findColumn(header, nameColumnCandidates)
	start := 0
	if col >= 0 {
		start = 1
	} else if len(header) > 0 {
		col = 0
	}
	if col < 0 {
		return -1, 0, errors.New("no usable name column found")
	}
	return col, start, nil
}

func matchExplicitColumn(header []string, explicit string) (int, bool, error) {
	for i, col := range header {
		if strings.EqualFold(col, explicit) {
			return i, true, nil
		}
	}
	if strings.HasPrefix(explicit, "#") {
		idx, err := parseColumnIndex(explicit)
		if err != nil {
			return -1, false, err
		}
		if idx >= len(header) {
			return -1, false, fmt.Errorf("column index %s is out of range", explicit)
		}
		return idx, false, nil
	}
	return -1, false, fmt.Errorf("column %q not found", explicit)
}

func parseColumnIndex(token string) (int, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(token, "#"))
	if trimmed == "" {
		return -1, fmt.Errorf("invalid column index %q", token)
	}
	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return -1, fmt.Errorf("invalid column index %q", token)
	}
	if idx <= 0 {
		return -1, fmt.Errorf("column indices are 1-based: %q", token)
	}
	return idx - 1, nil
}

func findColumn(header []string, candidates []string) int {
	for i, col := range header {
		for _, cand := range candidates {
			if strings.EqualFold(col, cand) {
				return i
			}
		}
	}
	return -1
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\uFEFF")
	return v
}

// ReadNameFileMetadata returns header information and the suggested
// name column for structured files.
func ReadNameFileMetadata(path string) (NameFileMetadata, error) {
	meta := NameFileMetadata{}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".tsv" {
		return meta, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return meta, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	if ext == ".tsv" {
		reader.Comma = '\t'
	}
	reader.FieldsPerRecord = -1
	row, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return meta, nil
		}
		return meta, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	header := make([]string, len(row))
	for i, cell := range row {
		header[i] = cleanCell(cell)
	}
	meta.Columns = header
	if col := findColumn(header, nameColumnCandidates); col >= 0 {
		meta.Suggested = header[col]
	} else if len(header) > 0 {
		meta.Suggested = "#1"
	}
	return meta, nil
}

// resultCSVHeader is the column layout written by WriteResultCSV.
var resultCSVHeader = []string{
	"name", "kana", "mora", "M", "score",
	FeatureLength, FeatureOpenness, FeatureSpecialRatio, FeatureYoonRatio,
	FeatureVoicedRatio, FeatureSemiVoiced, FeatureVowelDivers, FeaturePhonemeDens,
}

// WriteResultCSV writes evaluation results to path, best score first.
// The input slice is not mutated.
func WriteResultCSV(path string, results []Result) error {
	sorted := make([]Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(resultCSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range sorted {
		row := []string{
			r.Name,
			r.Kana,
			strings.Join(r.Moras, "|"),
			strconv.Itoa(r.M),
			formatScore(r.Score),
		}
		for _, name := range FeatureNames() {
			row = append(row, formatScore(r.Features.Value(name)))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush result: %w", err)
	}
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
