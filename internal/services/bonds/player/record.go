package player

import (
	"encoding/json"
	"fmt"
	"io"

	apperrors "github.com/louisbranch/playerbonds/internal/platform/errors"
	"github.com/louisbranch/playerbonds/internal/services/bonds/domain/bond"
)

const (
	fieldInfo  = "info"
	fieldBonds = "bonds"
)

// Record is a decoded player document.
type Record struct {
	fields map[string]json.RawMessage
	info   map[string]json.RawMessage
	bonds  bond.List
}

// NewRecord returns an empty record with no bonds.
func NewRecord() *Record {
	return &Record{fields: map[string]json.RawMessage{}, info: map[string]json.RawMessage{}}
}

// Decode reads one player document from r.
func Decode(r io.Reader) (*Record, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&fields); err != nil {
		return nil, apperrors.Wrap(apperrors.CodePlayerRecordInvalid, "decode player record", err)
	}
	if fields == nil {
		return nil, apperrors.New(apperrors.CodePlayerRecordInvalid, "player record must be a JSON object")
	}
	rec := &Record{fields: fields, info: map[string]json.RawMessage{}}
	if raw, ok := fields[fieldInfo]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &rec.info); err != nil {
			return nil, apperrors.Wrap(apperrors.CodePlayerRecordInvalid, "decode player info", err)
		}
	}
	if raw, ok := rec.info[fieldBonds]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &rec.bonds); err != nil {
			return nil, apperrors.Wrap(apperrors.CodePlayerRecordInvalid, "decode player bonds", err)
		}
	}
	return rec, nil
}

// Bonds returns a copy of the record's bonds.
func (r *Record) Bonds() bond.List {
	return r.bonds.Clone()
}

// SetBonds replaces the record's bonds.
func (r *Record) SetBonds(list bond.List) {
	r.bonds = list.Clone()
}

// Encode writes the record to w, indented, with unknown fields preserved.
func (r *Record) Encode(w io.Writer) error {
	list := r.bonds
	if list == nil {
		list = bond.List{}
	}
	bondsJSON, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode bonds: %w", err)
	}
	info := make(map[string]json.RawMessage, len(r.info)+1)
	for key, value := range r.info {
		info[key] = value
	}
	info[fieldBonds] = bondsJSON
	infoJSON, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode player info: %w", err)
	}
	fields := make(map[string]json.RawMessage, len(r.fields)+1)
	for key, value := range r.fields {
		fields[key] = value
	}
	fields[fieldInfo] = infoJSON

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fields); err != nil {
		return fmt.Errorf("encode player record: %w", err)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
