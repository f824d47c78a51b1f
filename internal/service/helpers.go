package service

import (
	"errors"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID converts a client-supplied hex id, reporting a validation error
// with the entity name on malformed input.
func parseID(id, entity string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.Validation("Invalid " + entity + " ID format")
	}
	return oid, nil
}

// storageErr maps repository sentinels onto the error taxonomy.
func storageErr(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NotFound(notFoundMsg)
	case errors.Is(err, repository.ErrDuplicateKey):
		return apperrors.Conflict(notFoundMsg)
	default:
		return apperrors.Storage(err)
	}
}
