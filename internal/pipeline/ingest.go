package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"go-activity-stats/internal/model"
)

// ------------------- Ingestion -------------------

// Ingest reads every row of a CSV export from a local path or an http(s) URL.
// The first row must hold the column names.
func Ingest(ctx context.Context, pathOrURL string) ([]model.SourceRow, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("source", pathOrURL).Msg("➡️ starting ingestion")

	reader, closeFn, err := openSource(ctx, pathOrURL)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	rows, err := ReadCSV(ctx, reader)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", pathOrURL, err)
	}

	logger.Info().Str("source", pathOrURL).Int("rows", len(rows)).Msg("📄 CSV ingestion done")
	return rows, nil
}

func openSource(ctx context.Context, pathOrURL string) (io.Reader, func(), error) {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pathOrURL, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to GET CSV: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, nil, fmt.Errorf("failed to GET CSV: unexpected status %s", resp.Status)
		}
		return resp.Body, func() { resp.Body.Close() }, nil
	}

	file, err := os.Open(pathOrURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	return file, func() { file.Close() }, nil
}

// ReadCSV decodes a header row followed by data rows. Any malformed row stops
// the read.
func ReadCSV(ctx context.Context, r io.Reader) ([]model.SourceRow, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true

	headers, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows []model.SourceRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		line, _ := csvReader.FieldPos(0)
		rec := make(model.GenericRecord, len(headers))
		for i, h := range headers {
			rec[h] = record[i]
		}
		rows = append(rows, model.SourceRow{Line: line, Record: rec})
	}
}
