package health

import (
	"context"
	"fmt"
)

// Checker verifies one external dependency this service needs at request
// time. The only dependency today is the completion provider credential, but
// the health endpoint reports through this seam so wiring stays in main.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Service evaluates the configured checkers for the health endpoint.
type Service struct {
	checkers []Checker
}

func NewService(checkers ...Checker) *Service {
	return &Service{checkers: checkers}
}

// Ready returns nil when every dependency is usable. The first failure is
// returned tagged with the checker name so operators can tell which
// dependency is misconfigured.
func (s *Service) Ready(ctx context.Context) error {
	for _, c := range s.checkers {
		if err := c.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", c.Name(), err)
		}
	}
	return nil
}
