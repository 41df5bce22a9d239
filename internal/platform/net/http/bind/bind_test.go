package bind

import (
	"errors"
	"strings"
	"testing"

	perr "hitch/internal/platform/errors"
)

type searchIn struct {
	Keyword   string   `query:"q" validate:"max=256"`
	Labels    []string `query:"labels" validate:"max=20,dive,min=1,max=50,noquote"`
	UpdatedAt string   `query:"updatedAt" validate:"omitempty,datetime=2006-01-02"`
	Page      int      `json:"page" validate:"min=0"`
}

func TestStruct_Valid(t *testing.T) {
	in := searchIn{Keyword: "panic", Labels: []string{"good first issue"}, UpdatedAt: "2024-01-31", Page: 2}
	if err := Struct(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Struct(searchIn{}); err != nil {
		t.Fatalf("zero value should validate, got %v", err)
	}
}

func TestStruct_Failures(t *testing.T) {
	tests := []struct {
		name  string
		in    searchIn
		field string
		msg   string
	}{
		{
			name:  "bad date",
			in:    searchIn{UpdatedAt: "31/01/2024"},
			field: "updatedAt",
			msg:   "updatedAt must be a date formatted as 2006-01-02",
		},
		{
			name:  "quoted label",
			in:    searchIn{Labels: []string{`say "hi"`}},
			field: "labels[0]",
			msg:   "labels[0] must not contain double quotes",
		},
		{
			name:  "keyword too long",
			in:    searchIn{Keyword: strings.Repeat("k", 257)},
			field: "q",
			msg:   "q must be at most 256",
		},
		{
			name:  "json tag fallback",
			in:    searchIn{Page: -1},
			field: "page",
			msg:   "page must be at least 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("expected validation code, got %v (%v)", perr.CodeOf(err), err)
			}
			e, _ := perr.As(err)
			if e.Field() != tt.field {
				t.Fatalf("field = %q, want %q", e.Field(), tt.field)
			}
			if e.Message() != tt.msg {
				t.Fatalf("message = %q, want %q", e.Message(), tt.msg)
			}
		})
	}
}

func TestStruct_InvalidTarget(t *testing.T) {
	err := Struct(42)
	if !perr.IsCode(err, perr.ErrorCodeUnknown) {
		t.Fatalf("non-struct should be an internal error, got %v", err)
	}
}

func TestFieldName_Fallbacks(t *testing.T) {
	type s struct {
		Secret int `json:"-" validate:"min=1"`
		Plain  int `validate:"min=1"`
	}
	field, _ := ValidationFieldAndMessage(Get().Validator.Struct(s{Plain: 1}))
	if field != "Secret" {
		t.Fatalf("expected field=Secret, got %s", field)
	}
	field, _ = ValidationFieldAndMessage(Get().Validator.Struct(s{Secret: 1}))
	if field != "Plain" {
		t.Fatalf("expected field=Plain, got %s", field)
	}
}

func TestValidationFieldAndMessage_GenericError(t *testing.T) {
	field, msg := ValidationFieldAndMessage(errors.New("boom"))
	if field != "" || msg != "boom" {
		t.Fatalf("expected generic passthrough, got field=%q msg=%q", field, msg)
	}
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil should yield empty pair")
	}
}

func TestRegisterValidation_Overwrites(t *testing.T) {
	if err := RegisterValidation("dupe_tag", func(FieldLevel) bool { return false }); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if err := RegisterValidation("dupe_tag", func(FieldLevel) bool { return true }); err != nil {
		t.Fatalf("unexpected error on second register: %v", err)
	}
	type S struct {
		N int `json:"n" validate:"dupe_tag"`
	}
	if err := Get().Validator.Struct(S{}); err != nil {
		t.Fatalf("expected validation to pass after overwrite, got %v", err)
	}
}
