package contract

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// toJSON serializes a record for storage. Records are plain structs so a
// marshal failure means a programming error, reported rather than swallowed.
func toJSON[T any](v T) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "encode record")
	}
	return string(data), nil
}

// fromJSON decodes a stored record. Failures wrap ErrCorruptRecord since the
// value came out of our own storage.
func fromJSON[T any](raw string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, errors.Wrapf(ErrCorruptRecord, "decode record: %v", err)
	}
	return v, nil
}
