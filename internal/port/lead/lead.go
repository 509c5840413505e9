package lead

import (
	"context"

	"github.com/google/uuid"

	domainlead "github.com/hellolead/hello-lead/internal/domain/lead"
)

// Repository is the storage abstraction for leads. The only shipped
// implementation is the seeded in-memory store; there is deliberately
// no database behind this interface.
type Repository interface {
	List(ctx context.Context, filters domainlead.ListFilters) ([]domainlead.Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainlead.Lead, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domainlead.Status) (domainlead.Lead, error)
	SetNotes(ctx context.Context, id uuid.UUID, notes string) (domainlead.Lead, error)
}
