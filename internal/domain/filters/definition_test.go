package filters

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"filterbar/internal/core/apperror"
)

func TestDefinitionMatches(t *testing.T) {
	simple := Definition{Key: "status"}
	ranged := Definition{Key: "created", MinKey: "created_min", MaxKey: "created_max"}

	tests := []struct {
		name string
		def  Definition
		key  string
		want bool
	}{
		{"simple on own key", simple, "status", true},
		{"simple on other key", simple, "created", false},
		{"range on primary key", ranged, "created", true},
		{"range on min edge", ranged, "created_min", true},
		{"range on max edge", ranged, "created_max", true},
		{"range on other key", ranged, "status", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.def.Matches(tt.key); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestCatalogFind_FirstMatchWins(t *testing.T) {
	cat := Catalog{
		{Key: "status", Label: "First"},
		{Key: "status", Label: "Second"},
	}

	def, ok := cat.Find("status")
	if !ok {
		t.Fatal("expected a match")
	}
	if def.Label != "First" {
		t.Errorf("first catalog entry must win, got %q", def.Label)
	}
}

func TestCatalogFind_Absent(t *testing.T) {
	cat := testCatalog()
	if _, ok := cat.Find("nope"); ok {
		t.Error("expected no match for unknown key")
	}
}

func TestOptionUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantValue string
		wantLabel string
	}{
		{"bare string", `"open"`, "open", "open"},
		{"object", `{"value":"closed","label":"Closed out"}`, "closed", "Closed out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Option
			if err := json.Unmarshal([]byte(tt.data), &o); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if o.Value() != tt.wantValue || o.Label() != tt.wantLabel {
				t.Errorf("got value %q label %q, want %q %q",
					o.Value(), o.Label(), tt.wantValue, tt.wantLabel)
			}
		})
	}
}

func TestOptionMarshalJSON(t *testing.T) {
	plain, err := json.Marshal(PlainOption("open"))
	if err != nil {
		t.Fatal(err)
	}
	if string(plain) != `"open"` {
		t.Errorf("plain option must serialize as a bare string, got %s", plain)
	}

	labeled, err := json.Marshal(LabeledOption("closed", "Closed out"))
	if err != nil {
		t.Fatal(err)
	}
	if string(labeled) != `{"value":"closed","label":"Closed out"}` {
		t.Errorf("unexpected labeled serialization: %s", labeled)
	}
}

func TestDefinitionUnmarshal_MixedOptions(t *testing.T) {
	data := `{
		"key": "status",
		"label": "Status",
		"type": "select",
		"options": ["open", {"value": "closed", "label": "Closed out"}]
	}`

	var def Definition
	if err := json.Unmarshal([]byte(data), &def); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(def.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(def.Options))
	}
	if def.Options[0].Label() != "open" || def.Options[1].Label() != "Closed out" {
		t.Errorf("unexpected options: %v", def.Options)
	}
}

func TestValidateValue(t *testing.T) {
	min := decimal.NewFromInt(0)
	max := decimal.NewFromInt(1000)

	selectDef := Definition{Key: "status", Kind: KindSelect,
		Options: []Option{PlainOption("open"), PlainOption("closed")}}
	dateDef := Definition{Key: "created", Kind: KindDateSelector}
	numberDef := Definition{Key: "total", Kind: KindNumber, MinValue: &min, MaxValue: &max}
	textDef := Definition{Key: "note", Kind: KindText}

	tests := []struct {
		name     string
		def      Definition
		value    string
		wantCode string
	}{
		{"select known option", selectDef, "open", ""},
		{"select unknown option", selectDef, "archived", apperror.CodeUnknownOption},
		{"date concrete value", dateDef, "2020-01-15", ""},
		{"date named value", dateDef, "today", ""},
		{"date empty value", dateDef, "", apperror.CodeValidation},
		{"number in range", numberDef, "500", ""},
		{"number below min", numberDef, "-1", apperror.CodeValueOutOfRange},
		{"number above max", numberDef, "1001", apperror.CodeValueOutOfRange},
		{"number malformed", numberDef, "abc", apperror.CodeValidation},
		{"text accepts anything", textDef, "whatever", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.ValidateValue(tt.value)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("want code %s, got %s", tt.wantCode, appErr.Code)
			}
		})
	}
}
