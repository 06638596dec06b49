package models

import (
	"encoding/json"
	"testing"
)

func TestOptDistinguishesAbsentNullAndValue(t *testing.T) {
	var p JournalPatch
	payload := []byte(`{"description": null, "issn": "1234-5678"}`)

	if err := json.Unmarshal(payload, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !p.Description.Set || p.Description.Value != nil {
		t.Fatalf("explicit null not detected: %+v", p.Description)
	}
	if !p.ISSN.Set || p.ISSN.Value == nil || *p.ISSN.Value != "1234-5678" {
		t.Fatalf("value not detected: %+v", p.ISSN)
	}
	if p.Title.Set {
		t.Fatalf("absent key marked present: %+v", p.Title)
	}
}

func TestOptConstructors(t *testing.T) {
	v := OptOf("x")
	if !v.Set || v.Value == nil || *v.Value != "x" {
		t.Fatalf("OptOf: %+v", v)
	}

	n := OptNull[string]()
	if !n.Set || n.Value != nil {
		t.Fatalf("OptNull: %+v", n)
	}
}

func TestOptMarshal(t *testing.T) {
	b, err := json.Marshal(OptOf(7))
	if err != nil || string(b) != "7" {
		t.Fatalf("marshal value: %s err=%v", b, err)
	}

	b, err = json.Marshal(OptNull[int]())
	if err != nil || string(b) != "null" {
		t.Fatalf("marshal null: %s err=%v", b, err)
	}
}
