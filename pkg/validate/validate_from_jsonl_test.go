package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/resto-app/backend/internal/domain"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewMenuValidator()

	line1 := oneLineJSONL(minimalValidItemJSON("item-1", "Pizza"))
	line2 := oneLineJSONL(minimalValidItemJSON("item-2", "")) // пустое имя
	line3 := ""                                               // пустая строка — ок
	line4 := oneLineJSONL(minimalValidItemJSON("item-3", "Salad"))

	input := strings.Join([]string{line1, line2, line3, line4}, "\n")
	var out bytes.Buffer

	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}

	outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(outLines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(outLines))
	}
	var i1, i2 domain.MenuItem
	if err := json.Unmarshal([]byte(outLines[0]), &i1); err != nil {
		t.Fatalf("unmarshal line1: %v", err)
	}
	if err := json.Unmarshal([]byte(outLines[1]), &i2); err != nil {
		t.Fatalf("unmarshal line2: %v", err)
	}
	got := []string{i1.ID, i2.ID}
	wantSet := map[string]bool{"item-1": true, "item-3": true}
	for _, id := range got {
		if !wantSet[id] {
			t.Fatalf("unexpected id in output: %s", id)
		}
	}
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	ctx := context.Background()
	validator := NewMenuValidator()

	bigDescription := strings.Repeat("X", 200_000) // > 64KB
	raw := `{
	  "id":"item-big","name":"Feast","base_price":99.99,
	  "availability":"Available Now",
	  "description":"` + bigDescription + `"
	}`

	var out bytes.Buffer
	rawCompact := oneLineJSONL(raw)
	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(rawCompact+"\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 1 || res.InvalidLinesCount != 0 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if strings.Count(strings.TrimSpace(out.String()), "\n")+1 != 1 {
		t.Fatalf("expected 1 output line")
	}
}

// ------ функции-помощники ------

func oneLineJSONL(s string) string {
	var b bytes.Buffer
	_ = json.Compact(&b, []byte(s))
	return b.String()
}
