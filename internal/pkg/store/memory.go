package store

import (
	"github.com/yama6a/rialcom-tariffs/internal/pkg/model"
	"go.uber.org/zap"
)

var _ Store = &MemoryStore{}

// MemoryStore keeps tariffs in process memory. Used for dry runs.
type MemoryStore struct {
	logger *zap.Logger
	data   []model.TariffRecord
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		logger: logger,
		data:   []model.TariffRecord{},
	}
}

func (s *MemoryStore) SaveTariffs(tariffs []model.TariffRecord) error {
	for _, t := range tariffs {
		s.logger.Debug("adding tariff", zap.Any("tariff", t))
	}
	s.data = append(s.data, tariffs...)

	return nil
}

func (s *MemoryStore) GetTariffs() []model.TariffRecord {
	return s.data
}
