package player

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/playerbonds/internal/platform/errors"
	"github.com/louisbranch/playerbonds/internal/services/bonds/domain/bond"
)

const sampleRecord = `{
  "id": "p-1",
  "level": 3,
  "info": {
    "pronouns": "she/her",
    "bonds": [
      {"name": "Ser Aldric", "admiration": true, "loyality": true, "affection": false, "inferiority": false, "mistrust": false, "hatred": false}
    ]
  }
}`

func TestDecodeReadsBonds(t *testing.T) {
	rec, err := Decode(strings.NewReader(sampleRecord))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bonds := rec.Bonds()
	if len(bonds) != 1 {
		t.Fatalf("len = %d, want 1", len(bonds))
	}
	want := bond.Bond{Name: "Ser Aldric", Admiration: true, Loyalty: true}
	if bonds[0] != want {
		t.Fatalf("bond = %+v, want %+v", bonds[0], want)
	}
}

func TestDecodeWithoutBonds(t *testing.T) {
	for _, doc := range []string{`{}`, `{"info":null}`, `{"info":{"bonds":null}}`} {
		rec, err := Decode(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("decode %s: %v", doc, err)
		}
		if len(rec.Bonds()) != 0 {
			t.Fatalf("decode %s: expected no bonds", doc)
		}
	}
}

func TestDecodeRejectsInvalidDocuments(t *testing.T) {
	for _, doc := range []string{``, `null`, `[1]`, `{"info":"x"}`, `{"info":{"bonds":{}}}`} {
		_, err := Decode(strings.NewReader(doc))
		if apperrors.CodeOf(err) != apperrors.CodePlayerRecordInvalid {
			t.Fatalf("decode %q: err = %v, want invalid record", doc, err)
		}
	}
}

func TestEncodePreservesOtherFields(t *testing.T) {
	rec, err := Decode(strings.NewReader(sampleRecord))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	rec.SetBonds(bond.Add(rec.Bonds()))

	var buf bytes.Buffer
	if err := rec.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	var out struct {
		ID    string `json:"id"`
		Level int    `json:"level"`
		Info  struct {
			Pronouns string          `json:"pronouns"`
			Bonds    []map[string]any `json:"bonds"`
		} `json:"info"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != "p-1" || out.Level != 3 || out.Info.Pronouns != "she/her" {
		t.Fatalf("record fields lost: %+v", out)
	}
	if len(out.Info.Bonds) != 2 {
		t.Fatalf("bonds = %d, want 2", len(out.Info.Bonds))
	}
	if out.Info.Bonds[0]["loyalty"] != true {
		t.Fatalf("bond = %v, want loyalty true", out.Info.Bonds[0])
	}
	if _, ok := out.Info.Bonds[0]["loyality"]; ok {
		t.Fatalf("bond = %v, did not expect legacy key", out.Info.Bonds[0])
	}
}

func TestEncodeEmptyBondsAsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRecord().Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"bonds": []`) {
		t.Fatalf("record = %s, want empty bonds array", buf.String())
	}
}

func TestBondsReturnsCopy(t *testing.T) {
	rec := NewRecord()
	rec.SetBonds(bond.List{{Name: "a"}})
	bonds := rec.Bonds()
	bonds[0].Name = "b"
	if rec.Bonds()[0].Name != "a" {
		t.Fatal("record bonds mutated through returned list")
	}
}
