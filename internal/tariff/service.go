package tariff

import (
	"context"
)

// Service handles tier table business logic
type Service struct {
	repo *Repository
}

// NewService creates a new tariff service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Load returns the active tier table, falling back to the compiled-in default
// when none is configured. The table is validated before being handed out;
// a malformed stored table surfaces as a ConfigurationError.
func (s *Service) Load(ctx context.Context) (Table, error) {
	stored, err := s.repo.GetActiveTable(ctx)
	if err != nil {
		return Table{}, err
	}

	table := Default()
	if stored != nil {
		table = *stored
	}

	if err := table.Validate(); err != nil {
		return Table{}, err
	}
	return table, nil
}

// Replace validates and stores a new tier table
func (s *Service) Replace(ctx context.Context, table Table) error {
	if err := table.Validate(); err != nil {
		return err
	}
	return s.repo.ReplaceTable(ctx, table)
}
