package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"invtrack/internal/repository"
)

// exportHeader is the fixed first row of every export.
var exportHeader = []string{"item", "category", "qty", "reorder_level"}

// ExportService serializes the inventory to CSV.
type ExportService interface {
	// Export writes the header plus one row per item (name order) to w and
	// returns the number of item rows written. An empty inventory writes
	// nothing and returns 0, so callers can avoid creating an empty file.
	Export(ctx context.Context, w io.Writer) (int, error)
}

type exportService struct {
	repo repository.ItemRepository
}

func NewExportService(repo repository.ItemRepository) ExportService {
	return &exportService{repo: repo}
}

func (s *exportService) Export(ctx context.Context, w io.Writer) (int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, err
	}
	for _, item := range items {
		record := []string{
			item.Name,
			item.Category,
			strconv.Itoa(item.Quantity),
			strconv.Itoa(item.ReorderLevel),
		}
		if err := cw.Write(record); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}
	return len(items), nil
}
