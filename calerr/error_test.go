package calerr

import (
	"encoding/json"
	"testing"
)

func TestInputError_Error(t *testing.T) {
	err := NewInputError("invalid year: %d", 0)
	if err.Error() != "invalid year: 0" {
		t.Errorf("Error() = %q, want %q", err.Error(), "invalid year: 0")
	}
}

func TestInputError_Nil(t *testing.T) {
	var err *InputError
	if err.Error() != "" {
		t.Errorf("Error() on nil = %q, want empty", err.Error())
	}
}

func TestInputError_MarshalJSON(t *testing.T) {
	err := NewInputError("duplicate holidays")
	b, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("unexpected marshal error: %v", marshalErr)
	}
	if string(b) != `"duplicate holidays"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, `"duplicate holidays"`)
	}
}

func TestInternalError_Error(t *testing.T) {
	err := NewInternalError("no valid work length at %s", "2025-06-01")
	want := "no valid work length at 2025-06-01"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var ves ValidationErrors
	ves.Add("rest block too short")
	ves.Add("work block too long")

	want := "rest block too short; work block too long"
	if ves.Error() != want {
		t.Errorf("Error() = %q, want %q", ves.Error(), want)
	}
}

func TestValidationErrors_HasErrors(t *testing.T) {
	var ves ValidationErrors
	if ves.HasErrors() {
		t.Error("HasErrors() on empty should be false")
	}
	ves.Add("violation")
	if !ves.HasErrors() {
		t.Error("HasErrors() after Add should be true")
	}
}
