package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"souled-store/internal/model"

	"github.com/rs/zerolog"
)

// Loader reads catalogue records from a source. Files are gzipped JSON
// lines, one product per line.
type Loader interface {
	// Load reads all product records from the named source.
	Load(ctx context.Context, source string) ([]model.Product, error)
}

// fileLoader implements Loader for local catalogue files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a gzipped catalogue file from the local file system.
func (l *fileLoader) Load(ctx context.Context, source string) ([]model.Product, error) {
	l.logger.Info().Str("file", source).Msg("loading catalogue file")

	file, err := os.Open(source)
	if err != nil {
		l.logger.Error().Err(err).Str("file", source).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", source, err)
	}
	defer file.Close()

	products, err := decodeRecords(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", source, err)
	}

	l.logger.Info().
		Str("file", source).
		Int("products_loaded", len(products)).
		Msg("catalogue file loaded successfully")

	return products, nil
}

// decodeRecords decompresses and parses a catalogue stream.
func decodeRecords(ctx context.Context, r io.Reader) ([]model.Product, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var products []model.Product
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		// Check context cancellation periodically
		if lineNumber%10_000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var p model.Product
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("invalid catalogue record on line %d: %w", lineNumber, err)
		}
		products = append(products, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalogue stream: %w", err)
	}

	return products, nil
}
