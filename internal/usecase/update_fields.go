package usecase

import (
	"bytes"
	"encoding/json"

	"fairchance-board/internal/domain/job"
	"fairchance-board/internal/repository"
)

type valueKind int

const (
	// kindText is a nullable string column.
	kindText valueKind = iota
	// kindRequiredText is a string column that may not be null.
	kindRequiredText
	// kindFlag is a boolean column decoded by truthiness.
	kindFlag
	// kindEmployerRef is a nullable reference to an active employer.
	kindEmployerRef
)

type fieldKind struct {
	column string
	kind   valueKind
}

// decodeAssignments turns the recognised keys of a partial update body into
// column assignments, in the order of columns.
func decodeAssignments(fields map[string]json.RawMessage, columns []fieldKind, checkEmployer func(int64) error) ([]repository.Assignment, error) {
	out := make([]repository.Assignment, 0, len(fields))
	for _, c := range columns {
		raw, ok := fields[c.column]
		if !ok {
			continue
		}
		v, err := decodeValue(c, raw, checkEmployer)
		if err != nil {
			return nil, err
		}
		out = append(out, repository.Assignment{Column: c.column, Value: v})
	}
	return out, nil
}

func decodeValue(c fieldKind, raw json.RawMessage, checkEmployer func(int64) error) (any, error) {
	switch c.kind {
	case kindFlag:
		v, err := job.Truthy(raw)
		if err != nil {
			return nil, invalid("Invalid value for %s", c.column)
		}
		return v, nil

	case kindEmployerRef:
		if isNull(raw) {
			return nil, nil
		}
		var id int64
		if err := json.Unmarshal(raw, &id); err != nil {
			return nil, invalid("Invalid employer_id")
		}
		if checkEmployer != nil {
			if err := checkEmployer(id); err != nil {
				return nil, err
			}
		}
		return id, nil

	default:
		var s *string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, invalid("Invalid value for %s", c.column)
		}
		if c.kind == kindRequiredText && (s == nil || *s == "") {
			return nil, invalid("Invalid value for %s", c.column)
		}
		return s, nil
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
