package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Postgres error codes the repositories downgrade into the API taxonomy.
const (
	codeUniqueViolation = "23505"
	codeFKViolation     = "23503"
	codeCheckViolation  = "23514"
	codeInvalidText     = "22P02"
)

// Downgrade converts driver-level failures into the application error
// taxonomy so no raw store error ever reaches a client. Errors that are not
// recognized are wrapped as internal.
func Downgrade(err error) *types.AppError {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeUniqueViolation:
			return types.NewConflictError("Duplicate " + constraintField(pqErr) + " entered!")
		case codeFKViolation:
			return types.NewValidationError("Referenced record does not exist!")
		case codeCheckViolation:
			return types.NewValidationError("Invalid field value!")
		case codeInvalidText:
			return types.NewValidationError("Invalid id!")
		}
	}
	return types.NewInternalError("Internal Server Error", err)
}

// constraintField extracts a readable field name from a unique constraint
// name such as "users_email_key".
func constraintField(pqErr *pq.Error) string {
	name := pqErr.Constraint
	if name == "" {
		return "value"
	}
	name = strings.TrimSuffix(name, "_key")
	if idx := strings.Index(name, "_"); idx >= 0 && idx+1 < len(name) {
		return name[idx+1:]
	}
	return name
}
