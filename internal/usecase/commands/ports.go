package commands

import (
	"github.com/google/uuid"
)

// ActorContext identifies who performs a command and where the request came
// from; mutations stamp it into the audit trail.
type ActorContext struct {
	UserID    uuid.UUID
	CompanyID *uuid.UUID
	ClientIP  string
	UserAgent string
}
