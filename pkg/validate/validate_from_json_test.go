package validate

import (
	"context"
	"strings"
	"testing"
)

func TestValidateMenuItemFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewMenuValidator()

	item, err := ValidateMenuItemFromJSON(ctx, validator, []byte(minimalValidItemJSON("item-1", "Pizza")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != "item-1" || item.Name != "Pizza" {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestValidateMenuItemFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewMenuValidator()

	raw := `{"unknown":"x",` + minimalValidItemJSON("item-2", "Pizza")[1:]
	_, err := ValidateMenuItemFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
}

func TestValidateMenuItemFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewMenuValidator()

	raw := minimalValidItemJSON("item-3", "Pizza") + "{}"
	_, err := ValidateMenuItemFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateMenuItemFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	validator := NewMenuValidator()

	// Не валиден: пустое имя
	raw := minimalValidItemJSON("item-4", "")
	_, err := ValidateMenuItemFromJSON(ctx, validator, []byte(raw))
	if err == nil {
		t.Fatalf("expected domain validation error, got nil")
	}
}

// ---- helpers ----

func minimalValidItemJSON(id, name string) string {
	return `{"id":"` + id + `","name":"` + name + `","base_price":14.99,"availability":"Available Now"}`
}
