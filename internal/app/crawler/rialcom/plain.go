package rialcom

import (
	"github.com/yama6a/rialcom-tariffs/internal/pkg/model"
	"github.com/yama6a/rialcom-tariffs/internal/pkg/utils"
	"go.uber.org/zap"
)

const (
	plainNameCol  = 0
	plainFeeCol   = 1
	plainSpeedCol = 3
	plainMinCols  = 4

	// The page lists plain speeds in kbit/s.
	plainSpeedDivisor = 1000
)

// extractPlainTariffs turns every body row of the plain tariff table into a record.
// Columns: name | monthly fee | (unused) | speed.
func (c *RialcomCrawler) extractPlainTariffs(table utils.Table) []model.TariffRecord {
	tariffs := make([]model.TariffRecord, 0, len(table.Rows))

	for i, row := range table.Rows {
		cols := row.DataCells()
		if len(cols) < plainMinCols {
			c.logger.Debug("plain tariff row has insufficient columns, skipping",
				zap.Int("row", i),
				zap.Int("columns", len(cols)))
			continue
		}

		fee, _ := utils.DigitsOnly(cols[plainFeeCol]) // 0 when the cell has no digits

		var speed *int
		if raw, ok := utils.FirstDigitRun(cols[plainSpeedCol]); ok {
			speed = model.IntPtr(raw / plainSpeedDivisor)
		}

		tariffs = append(tariffs, model.TariffRecord{
			Name:         utils.StripMarkers(cols[plainNameCol]),
			ChannelCount: nil,
			AccessSpeed:  speed,
			MonthlyFee:   fee,
		})
	}

	return tariffs
}
