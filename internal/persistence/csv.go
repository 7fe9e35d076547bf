package persistence

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"katalog/internal/models"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

// csvMinFields is the number of leading columns an import row must carry.
const csvMinFields = 7

// ErrMalformedRow is matched by every *MalformedRowError.
var ErrMalformedRow = errors.New("malformed csv row")

// MalformedRowError describes a CSV data row that was skipped on import.
type MalformedRowError struct {
	Line int
	Err  error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("csv line %d: %v", e.Line, e.Err)
}

func (e *MalformedRowError) Unwrap() []error {
	return []error{ErrMalformedRow, e.Err}
}

// ImportResult holds the products rebuilt from a CSV file and the rows
// that could not be used.
type ImportResult struct {
	Products []models.Product
	Skipped  []*MalformedRowError
}

type csvPrice float64

func (p csvPrice) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(p), 'f', 2, 64), nil
}

// csvRow is the exported shape of a product. Variant attributes are not
// part of the format.
type csvRow struct {
	ID        string   `csv:"ID"`
	Name      string   `csv:"Name"`
	Model     string   `csv:"Model"`
	Color     string   `csv:"Color"`
	StorageGB int      `csv:"StorageGB"`
	Price     csvPrice `csv:"Price"`
	Stock     int      `csv:"Stock"`
}

// CSVPath resolves a file name inside the data directory, adding the .csv
// extension when it is missing.
func (s *FileStore) CSVPath(name string) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "", fmt.Errorf("invalid csv file name %q", name)
	}
	if !strings.EqualFold(filepath.Ext(base), ".csv") {
		base += ".csv"
	}
	return filepath.Join(s.dataDir, base), nil
}

// ExportCSV writes products to data/<name>.csv and returns the path written.
func (s *FileStore) ExportCSV(name string, products []models.Product) (string, error) {
	path, err := s.CSVPath(name)
	if err != nil {
		return "", err
	}
	if err := s.ensureDataDir(); err != nil {
		return "", err
	}

	rows := make([]*csvRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, &csvRow{
			ID:        p.ID,
			Name:      p.Name,
			Model:     p.Model,
			Color:     p.Color,
			StorageGB: p.StorageGB,
			Price:     csvPrice(p.Price),
			Stock:     p.Stock,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCSVWrite, err)
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("%w: %w", ErrCSVWrite, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCSVWrite, err)
	}

	s.logger.Info("csv exported", zap.String("path", path), zap.Int("products", len(rows)))
	return path, nil
}

// ImportCSV reads data/<name>.csv. The header row is discarded and each
// data row is rebuilt positionally into a product with a fresh ID and the
// default variant attributes for its Name. Bad rows are skipped.
func (s *FileStore) ImportCSV(name string) (*ImportResult, error) {
	path, err := s.CSVPath(name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureDataDir(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCSVNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrCSVUnreadable, err)
	}
	defer f.Close()

	result, err := s.readCSV(f)
	if err != nil {
		return nil, err
	}
	s.logger.Info("csv imported",
		zap.String("path", path),
		zap.Int("products", len(result.Products)),
		zap.Int("skipped", len(result.Skipped)))
	return result, nil
}

func (s *FileStore) readCSV(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	result := &ImportResult{Products: make([]models.Product, 0)}

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		var parseErr *csv.ParseError
		if !errors.As(err, &parseErr) {
			return nil, fmt.Errorf("%w: %w", ErrCSVUnreadable, err)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: %w", ErrCSVUnreadable, err)
			}
			s.skip(result, &MalformedRowError{Line: parseErr.Line, Err: parseErr.Err})
			continue
		}

		line, _ := reader.FieldPos(0)
		p, err := parseCSVRecord(record)
		if err != nil {
			s.skip(result, &MalformedRowError{Line: line, Err: err})
			continue
		}
		result.Products = append(result.Products, *p)
	}
	return result, nil
}

func (s *FileStore) skip(result *ImportResult, rowErr *MalformedRowError) {
	s.logger.Warn("skipping invalid csv row", zap.Int("line", rowErr.Line), zap.Error(rowErr.Err))
	result.Skipped = append(result.Skipped, rowErr)
}

func parseCSVRecord(record []string) (*models.Product, error) {
	if len(record) < csvMinFields {
		return nil, fmt.Errorf("expected at least %d fields, got %d", csvMinFields, len(record))
	}

	name := strings.TrimSpace(record[1])
	kind, ok := models.KindForName(name)
	if !ok {
		return nil, fmt.Errorf("unknown product name %q", name)
	}
	storage, err := strconv.Atoi(strings.TrimSpace(record[4]))
	if err != nil {
		return nil, fmt.Errorf("invalid storage %q: %w", record[4], err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", record[5], err)
	}
	if math.IsInf(price, 0) || math.IsNaN(price) {
		return nil, fmt.Errorf("invalid price %q: not a finite number", record[5])
	}
	stock, err := strconv.Atoi(strings.TrimSpace(record[6]))
	if err != nil {
		return nil, fmt.Errorf("invalid stock %q: %w", record[6], err)
	}

	spec, _ := models.DefaultSpec(kind)
	return models.New(spec, record[2], price, stock, record[3], storage)
}
