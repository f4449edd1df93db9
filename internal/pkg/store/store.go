// Package store provides data persistence interfaces and implementations.
//
//go:generate go run -mod=mod github.com/matryer/moq -out storemock/store_mock.go -pkg storemock . Store
package store

import "github.com/yama6a/rialcom-tariffs/internal/pkg/model"

// Store defines the interface for persisting a complete tariff listing.
type Store interface {
	SaveTariffs(tariffs []model.TariffRecord) error
}
