package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"lifeos/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("expected \"2024-05-01\", got %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01T15:30:00Z"` {
		t.Errorf("unexpected DateTime JSON: %s", b)
	}
}

func TestNewDateNil(t *testing.T) {
	if response.NewDate(nil) != nil {
		t.Errorf("expected nil Date for nil time")
	}
	if response.NewDateTime(nil) != nil {
		t.Errorf("expected nil DateTime for nil time")
	}
}
