// Package rialcom scrapes the RialCom internet tariff page.
//
// The page has a business and a private housing section. Each section holds
// up to two tables: plain internet tariffs first, internet+TV combos second.
package rialcom

import (
	"fmt"

	"github.com/yama6a/rialcom-tariffs/internal/app/crawler"
	"github.com/yama6a/rialcom-tariffs/internal/pkg/http"
	"github.com/yama6a/rialcom-tariffs/internal/pkg/model"
	"github.com/yama6a/rialcom-tariffs/internal/pkg/utils"
	"go.uber.org/zap"
)

const (
	plainTableIndex = 0
	comboTableIndex = 1
)

var _ crawler.SiteCrawler = &RialcomCrawler{}

// Config selects the page and the section containers to read.
type Config struct {
	URL               string
	BusinessSectionID string
	PrivateSectionID  string
}

//nolint:revive // Provider name prefix is intentional for clarity
type RialcomCrawler struct {
	httpClient http.Client
	cfg        Config
	logger     *zap.Logger
}

func NewRialcomCrawler(httpClient http.Client, cfg Config, logger *zap.Logger) *RialcomCrawler {
	return &RialcomCrawler{httpClient: httpClient, cfg: cfg, logger: logger}
}

// Crawl fetches the tariff page once and extracts every tariff on it.
func (c *RialcomCrawler) Crawl() ([]model.TariffRecord, error) {
	rawHTML, err := c.httpClient.Fetch(c.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed fetching RialCom tariff page: %w", err)
	}

	return c.ParsePage(rawHTML)
}

// ParsePage extracts tariffs in a fixed order: business plain, business combo,
// private plain, private combo. The business combo pass fills the channel map
// that the private combo pass reads, so the order must not change.
func (c *RialcomCrawler) ParsePage(rawHTML string) ([]model.TariffRecord, error) {
	doc, err := utils.ParseDocument(rawHTML)
	if err != nil {
		return nil, err
	}

	sections := []model.Section{
		{ID: c.cfg.BusinessSectionID, Private: false},
		{ID: c.cfg.PrivateSectionID, Private: true},
	}

	channels := ChannelMap{}
	var tariffs []model.TariffRecord

	for _, section := range sections {
		tables, err := utils.SectionTables(doc, section.ID)
		if err != nil {
			return nil, err
		}

		if len(tables) == 0 {
			c.logger.Debug("no tariff tables in section", zap.String("section", section.ID))
		}

		if len(tables) > plainTableIndex {
			tariffs = append(tariffs, c.extractPlainTariffs(tables[plainTableIndex])...)
		}
		if len(tables) > comboTableIndex {
			tariffs = append(tariffs, c.extractComboTariffs(tables[comboTableIndex], section, channels)...)
		}

		c.logger.Debug("parsed section",
			zap.String("section", section.ID),
			zap.Bool("private", section.Private),
			zap.Int("tables", len(tables)),
			zap.Int("tariffsSoFar", len(tariffs)),
		)
	}

	return tariffs, nil
}
