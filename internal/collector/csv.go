package collector

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"TechSentinel/internal/model"
)

// CSVFetcher reads daily bars from <Dir>/<SYMBOL>.csv with the header
// date,open,high,low,close,volume. The period is ignored; the whole file is
// returned in file order so the validator sees the data exactly as stored.
type CSVFetcher struct {
	Dir string
}

func (f *CSVFetcher) Name() string { return "csv" }

var csvColumns = []string{"date", "open", "high", "low", "close", "volume"}

func (f *CSVFetcher) FetchBars(ctx context.Context, symbol, _ string) ([]model.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(f.Dir, strings.ToUpper(symbol)+".csv")
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return parseCSV(file)
}

func parseCSV(r io.Reader) ([]model.Bar, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range csvColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var bars []model.Bar
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		t, err := time.Parse("2006-01-02", rec[idx["date"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: date: %w", line, err)
		}
		bar := model.Bar{Time: t}
		fields := []struct {
			col string
			dst *float64
		}{
			{"open", &bar.Open},
			{"high", &bar.High},
			{"low", &bar.Low},
			{"close", &bar.Close},
			{"volume", &bar.Volume},
		}
		for _, fd := range fields {
			v, err := strconv.ParseFloat(rec[idx[fd.col]], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", line, fd.col, err)
			}
			*fd.dst = v
		}
		bars = append(bars, bar)
	}
	return bars, nil
}
