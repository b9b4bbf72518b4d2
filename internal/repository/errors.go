package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a findOne lookup matches no document.
var ErrNotFound = errors.New("document not found")

// IsDuplicateKey checks if the error is a unique index violation,
// e.g. a signup reusing an existing userName or emailId.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
