package stabilizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/erraggy/fixturetools/staberrors"
)

// StabilizeRecord stabilizes a typed record by round-tripping it through
// its JSON representation: the record is encoded (resolving field names to
// their serialized aliases), the resulting generic tree is stabilized, and
// the stabilized tree is decoded back into a fresh value of the same type.
// The input record is never modified.
//
// Decoding back is strict: a stabilized tree that no longer matches the
// record's schema — possible only when a replacement value is
// type-incompatible with the target field — returns a
// *staberrors.ReconstructError naming the offending path. That indicates a
// rule/data contract bug and is not recoverable.
func StabilizeRecord[T any](s *Stabilizer, record T) (T, error) {
	var zero T

	encoded, err := json.Marshal(record)
	if err != nil {
		return zero, fmt.Errorf("stabilizer: failed to encode record: %w", err)
	}

	var tree any
	if err := json.Unmarshal(encoded, &tree); err != nil {
		return zero, fmt.Errorf("stabilizer: failed to decode record tree: %w", err)
	}

	stabilized := s.StabilizeValue(tree)

	out, err := json.Marshal(stabilized)
	if err != nil {
		return zero, fmt.Errorf("stabilizer: failed to encode stabilized tree: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(out))
	dec.DisallowUnknownFields()
	var result T
	if err := dec.Decode(&result); err != nil {
		recErr := &staberrors.ReconstructError{
			RecordType: fmt.Sprintf("%T", record),
			Message:    "stabilized document no longer matches record schema",
			Cause:      err,
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			recErr.Path = typeErr.Field
		}
		return zero, recErr
	}
	return result, nil
}

// StabilizeRecords stabilizes each record in a slice independently.
// One record's reconstruction failure does not prevent processing of its
// siblings: failed positions keep their original value and the returned
// error joins every per-record failure, each wrapped with its index.
func StabilizeRecords[T any](s *Stabilizer, records []T) ([]T, error) {
	if records == nil {
		return nil, nil
	}

	out := make([]T, len(records))
	var errs []error
	for i, record := range records {
		stable, err := StabilizeRecord(s, record)
		if err != nil {
			out[i] = record
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		out[i] = stable
	}
	return out, errors.Join(errs...)
}
