package application

import (
	"context"
	"time"

	"github.com/Apurer/scanpack-api/internal/domains/packing/domain"
	"github.com/Apurer/scanpack-api/internal/domains/packing/ports"
)

// DefaultTimezone is the warehouse timezone used to stamp daily packing tags.
const DefaultTimezone = "Asia/Karachi"

// Service orchestrates the packing bounded context use cases.
type Service struct {
	tags     ports.TagGateway
	now      func() time.Time
	location *time.Location
}

type Option func(*Service)

// WithClock overrides the time source for deterministic testing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the timezone used to stamp daily packing tags.
func WithLocation(location *time.Location) Option {
	return func(s *Service) {
		if location != nil {
			s.location = location
		}
	}
}

// NewService wires the packing service with its dependencies. The tag date
// defaults to the warehouse timezone, falling back to UTC when the zone
// database does not carry it.
func NewService(tags ports.TagGateway, opts ...Option) *Service {
	s := &Service{tags: tags, now: time.Now}
	if location, err := time.LoadLocation(DefaultTimezone); err == nil {
		s.location = location
	} else {
		s.location = time.UTC
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// MarkPacked applies today's packing tag to the order, preserving existing
// tags and never introducing duplicates. The read-modify-write is not atomic
// against concurrent taggers on the same order; last write wins.
func (s *Service) MarkPacked(ctx context.Context, orderID int64) (*ports.PackResult, error) {
	existing, err := s.tags.GetOrderTags(ctx, orderID)
	if err != nil {
		return nil, err
	}
	todayTag := domain.PackedTag(s.now().In(s.location))
	set := domain.ParseTagSet(existing)
	set.Append(todayTag)
	merged := set.String()
	if err := s.tags.UpdateOrderTags(ctx, orderID, merged); err != nil {
		return nil, err
	}
	return &ports.PackResult{Tag: todayTag, Tags: merged}, nil
}

var _ ports.Service = (*Service)(nil)
