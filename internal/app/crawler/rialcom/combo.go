package rialcom

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yama6a/rialcom-tariffs/internal/pkg/model"
	"github.com/yama6a/rialcom-tariffs/internal/pkg/utils"
	"go.uber.org/zap"
)

const (
	comboNameCol = 0

	comboNameFormat    = "%s + РиалКом Интернет %d + ТВ%s"
	privateComboSuffix = "_ч"
)

var (
	// "Пакет (20 каналов)" -> 20.
	channelCountRegex = regexp.MustCompile(`\((\d+) канал`)
	// Greedy up to the last closing parenthesis so footnotes inside the clause go too.
	channelClauseRegex = regexp.MustCompile(`\(\d+ канал.*\)`)
)

// ChannelMap maps a combo base name to the channel count published for it in
// the business section. Private section combos omit the count and borrow it
// from here. A nil value means the business row had no count.
type ChannelMap map[string]*int

// Record stores the count for baseName, replacing any earlier entry.
func (m ChannelMap) Record(baseName string, channels *int) {
	m[baseName] = channels
}

// Lookup returns the count recorded for baseName, or nil.
func (m ChannelMap) Lookup(baseName string) *int {
	return m[baseName]
}

// extractComboTariffs emits one record per plan row and speed column.
// The header row holds a label column followed by one speed per column;
// body rows hold the plan name followed by a price per speed column.
func (c *RialcomCrawler) extractComboTariffs(table utils.Table, section model.Section, channels ChannelMap) []model.TariffRecord {
	speeds := parseSpeedHeader(table.Header)

	var tariffs []model.TariffRecord

	for i, row := range table.Rows {
		cols := row.DataCells()
		if len(cols) == 0 {
			continue
		}

		baseName, ownChannels := splitChannelClause(utils.StripMarkers(cols[comboNameCol]))

		if !section.Private {
			channels.Record(baseName, ownChannels)
		}

		channelCount := ownChannels
		if section.Private {
			channelCount = channels.Lookup(baseName)
		}

		for idx, priceText := range cols[comboNameCol+1:] {
			if idx >= len(speeds) || speeds[idx] == nil {
				c.logger.Debug("combo price column has no speed header, skipping",
					zap.Int("row", i),
					zap.Int("column", idx))
				continue
			}
			if priceText == "" {
				continue
			}

			fee, _ := utils.DigitsOnly(priceText)
			speed := *speeds[idx]

			tariffs = append(tariffs, model.TariffRecord{
				Name:         comboName(baseName, speed, section.Private),
				ChannelCount: copyInt(channelCount),
				AccessSpeed:  model.IntPtr(speed),
				MonthlyFee:   fee,
			})
		}
	}

	return tariffs
}

// parseSpeedHeader reads one speed per header cell, skipping the label column.
// Cells without a numeral or with a zero speed yield nil.
func parseSpeedHeader(header utils.Row) []*int {
	cells := header.HeaderCells()
	if len(cells) <= 1 {
		return nil
	}

	speeds := make([]*int, 0, len(cells)-1)
	for _, text := range cells[1:] {
		speed, ok := utils.FirstDigitRun(text)
		if !ok || speed == 0 {
			speeds = append(speeds, nil)
			continue
		}
		speeds = append(speeds, model.IntPtr(speed))
	}

	return speeds
}

// splitChannelClause separates "Пакет (20 каналов)" into "Пакет" and 20.
func splitChannelClause(nameCell string) (string, *int) {
	var channels *int
	if m := channelCountRegex.FindStringSubmatch(nameCell); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			channels = model.IntPtr(n)
		}
	}

	baseName := strings.TrimSpace(channelClauseRegex.ReplaceAllString(nameCell, ""))

	return baseName, channels
}

func comboName(baseName string, speed int, private bool) string {
	suffix := ""
	if private {
		suffix = privateComboSuffix
	}
	return fmt.Sprintf(comboNameFormat, baseName, speed, suffix)
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	return model.IntPtr(*v)
}
