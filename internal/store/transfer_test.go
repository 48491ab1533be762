package store

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	want := testCollection()

	var buf bytes.Buffer
	if err := Export(&buf, want); err != nil {
		t.Fatalf("export: %v", err)
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("imported %d subjects, want %d", len(got), len(want))
	}
	if got[0].Name != "Japanese" || got[0].Streak != 7 {
		t.Errorf("subject state lost: %+v", got[0])
	}
	if len(got[0].Sessions) != 2 || got[0].Sessions[0].Date != "2025-03-01" {
		t.Errorf("sessions lost: %+v", got[0].Sessions)
	}
}

func TestExportEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, nil); err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty export = %q, want []", buf.String())
	}
}

func TestImportRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "{{{"},
		{"not an array", `{"id":"x"}`},
		{"missing required field", `[{"id":"x","name":"Math"}]`},
		{"bad date format", `[{"id":"x","name":"Math","level":1,"streak":0,"daysCompleted":0,"isArchived":false,"sessions":[{"id":"s","date":"01/02/2025","inputMinutes":1,"outputMinutes":1,"meetsRequirement":true}]}]`},
		{"negative minutes", `[{"id":"x","name":"Math","level":1,"streak":0,"daysCompleted":0,"isArchived":false,"sessions":[{"id":"s","date":"2025-01-02","inputMinutes":-1,"outputMinutes":1,"meetsRequirement":true}]}]`},
		{"level below one", `[{"id":"x","name":"Math","level":0,"streak":0,"daysCompleted":0,"isArchived":false,"sessions":[]}]`},
		{"unknown property", `[{"id":"x","name":"Math","level":1,"streak":0,"daysCompleted":0,"isArchived":false,"sessions":[],"color":"red"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Import(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected import to be rejected")
			}
		})
	}
}

func TestImportAcceptsValidDocument(t *testing.T) {
	doc := `[{"id":"x","name":"Math","level":1,"streak":0,"daysCompleted":0,"isArchived":false,"sessions":[]}]`
	got, err := Import(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Math" {
		t.Errorf("unexpected result: %+v", got)
	}
}
