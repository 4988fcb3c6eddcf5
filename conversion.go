package ampconv

import (
	"context"
	"time"
)

// Conversion is a recorded run of the converter over one input.
type Conversion struct {
	ID          string        `json:"id"`
	Source      string        `json:"source"`
	HTML        string        `json:"html"`
	ContentHash string        `json:"contentHash"`
	Actions     []ActionTaken `json:"actions"`
	ConvertedAt time.Time     `json:"convertedAt"`
}

// Validate returns an error if the conversion contains invalid fields.
func (c *Conversion) Validate() error {
	if c.Source == "" {
		return Errorf(EINVALID, "conversion source required")
	}
	return nil
}

// ConversionService represents a service for managing recorded conversions.
type ConversionService interface {
	// CreateConversion records a conversion and its actions.
	CreateConversion(ctx context.Context, conv *Conversion) error

	// FindConversionByID retrieves a conversion, including its actions.
	// Returns ENOTFOUND if the conversion does not exist.
	FindConversionByID(ctx context.Context, id string) (*Conversion, error)

	// FindConversions retrieves conversions matching the filter, newest first.
	// Actions are not loaded.
	FindConversions(ctx context.Context, filter ConversionFilter) ([]*Conversion, error)

	// DeleteConversion permanently removes a conversion and its actions.
	// Returns ENOTFOUND if the conversion does not exist.
	DeleteConversion(ctx context.Context, id string) error
}

// ConversionFilter represents a filter for FindConversions.
type ConversionFilter struct {
	ID     *string `json:"id"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
