package mock

import (
	"context"

	"github.com/fwojciec/ampconv"
)

var _ ampconv.ConversionService = (*ConversionService)(nil)

// ConversionService is a mock implementation of ampconv.ConversionService.
type ConversionService struct {
	CreateConversionFn   func(ctx context.Context, conv *ampconv.Conversion) error
	FindConversionByIDFn func(ctx context.Context, id string) (*ampconv.Conversion, error)
	FindConversionsFn    func(ctx context.Context, filter ampconv.ConversionFilter) ([]*ampconv.Conversion, error)
	DeleteConversionFn   func(ctx context.Context, id string) error
}

func (s *ConversionService) CreateConversion(ctx context.Context, conv *ampconv.Conversion) error {
	return s.CreateConversionFn(ctx, conv)
}

func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*ampconv.Conversion, error) {
	return s.FindConversionByIDFn(ctx, id)
}

func (s *ConversionService) FindConversions(ctx context.Context, filter ampconv.ConversionFilter) ([]*ampconv.Conversion, error) {
	return s.FindConversionsFn(ctx, filter)
}

func (s *ConversionService) DeleteConversion(ctx context.Context, id string) error {
	return s.DeleteConversionFn(ctx, id)
}
