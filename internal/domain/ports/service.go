package ports

import (
	"context"

	"rate-aggregator/internal/domain/model"
)

// RateService is the single contract the rest of the application consumes.
type RateService interface {
	GetRate(ctx context.Context, from, to string, caller model.CallerContext) (float64, bool)
	Convert(ctx context.Context, amount float64, from, to string, caller model.CallerContext) (float64, bool)
	GetAllRates(ctx context.Context, from, to string, caller model.CallerContext) []model.ProviderRate
}
