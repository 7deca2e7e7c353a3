package storage

import (
	"context"

	"github.com/sportarb/oddsarb/internal/arbitrage"
)

// Storage is the interface for persisting detected opportunities.
type Storage interface {
	// SaveOpportunity persists a detected opportunity.
	SaveOpportunity(ctx context.Context, opp *arbitrage.Opportunity) error

	// Close closes the storage connection.
	Close() error
}
