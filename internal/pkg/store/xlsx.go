package store

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/yama6a/rialcom-tariffs/internal/pkg/model"
	"go.uber.org/zap"
)

const (
	DefaultSheetName = "Sheet1"

	// MissingChannelCount is written instead of a blank cell when a tariff has no channel count.
	MissingChannelCount = "null"

	nameColumnWidth = 60
)

var (
	_ Store = &XLSXStore{}

	// XLSXHeader is the header row of the exported sheet.
	XLSXHeader = []string{"Название тарифа", "Количество каналов", "Скорость доступа", "Абонентская плата"} //nolint: gochecknoglobals
)

// XLSXStore writes the tariff listing to a single spreadsheet file, replacing any existing file.
type XLSXStore struct {
	path      string
	sheetName string
	logger    *zap.Logger
}

func NewXLSXStore(path, sheetName string, logger *zap.Logger) *XLSXStore {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	return &XLSXStore{
		path:      path,
		sheetName: sheetName,
		logger:    logger,
	}
}

// Path returns the file the store writes to.
func (s *XLSXStore) Path() string {
	return s.path
}

func (s *XLSXStore) SaveTariffs(tariffs []model.TariffRecord) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	if s.sheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, s.sheetName); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	}

	sw, err := f.NewStreamWriter(s.sheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	if err := sw.SetColWidth(1, 1, nameColumnWidth); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	header := make([]interface{}, 0, len(XLSXHeader))
	for _, h := range XLSXHeader {
		header = append(header, h)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, t := range tariffs {
		cell, err := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := sw.SetRow(cell, tariffRow(t)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush rows: %w", err)
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.path, err)
	}

	s.logger.Info("tariffs exported", zap.String("file", s.path), zap.Int("rows", len(tariffs)))
	return nil
}

// tariffRow renders one record. A missing speed leaves the cell empty.
func tariffRow(t model.TariffRecord) []interface{} {
	var channels interface{} = MissingChannelCount
	if t.ChannelCount != nil {
		channels = *t.ChannelCount
	}

	var speed interface{}
	if t.AccessSpeed != nil {
		speed = *t.AccessSpeed
	}

	return []interface{}{t.Name, channels, speed, t.MonthlyFee}
}
