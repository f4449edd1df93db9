package crawler

import (
	"fmt"

	"github.com/yama6a/rialcom-tariffs/internal/pkg/model"
	"github.com/yama6a/rialcom-tariffs/internal/pkg/store"
	"go.uber.org/zap"
)

type SiteCrawler interface {
	Crawl() ([]model.TariffRecord, error)
}

type Service struct {
	store   store.Store
	crawler SiteCrawler
	logger  *zap.Logger
}

func NewService(s store.Store, crawler SiteCrawler, logger *zap.Logger) *Service {
	return &Service{
		store:   s,
		crawler: crawler,
		logger:  logger,
	}
}

// Run crawls once and hands the complete result to the store.
// Nothing is stored when the crawl fails.
func (s *Service) Run() (int, error) {
	tariffs, err := s.crawler.Crawl()
	if err != nil {
		return 0, fmt.Errorf("crawl failed: %w", err)
	}

	// Build summary of optional fields.
	var withChannels, withSpeed uint
	for _, t := range tariffs {
		if t.ChannelCount != nil {
			withChannels++
		}
		if t.AccessSpeed != nil {
			withSpeed++
		}
	}
	s.logger.Info("crawl results",
		zap.Int("tariffs", len(tariffs)),
		zap.Uint("withChannelCount", withChannels),
		zap.Uint("withAccessSpeed", withSpeed),
	)

	if err := s.store.SaveTariffs(tariffs); err != nil {
		return 0, fmt.Errorf("failed to store tariffs: %w", err)
	}

	return len(tariffs), nil
}
