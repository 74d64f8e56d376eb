package table

import (
	"strings"
	"testing"

	"github.com/matzehuels/gridtable/pkg/errors"
)

func TestFromJSON(t *testing.T) {
	tbl, err := FromJSON(strings.NewReader(`[{"b":"2","a":"1"}]`))
	if err != nil {
		t.Fatalf("FromJSON() error: %v", err)
	}

	expect(t, tbl.String(),
		"+-+-+",
		"|a|b|",
		"+-+-+",
		"|1|2|",
		"+-+-+",
	)
}

func TestFromJSONMixedKeys(t *testing.T) {
	input := `[{"name":"alice","id":"1"},{"id":"2","extra":true}]`
	tbl, err := FromJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("FromJSON() error: %v", err)
	}

	expect(t, tbl.String(),
		"+-----+--+-----+",
		"|extra|id|name |",
		"+-----+--+-----+",
		"|     |1 |alice|",
		"+-----+--+-----+",
		"|true |2 |     |",
		"+-----+--+-----+",
	)
}

func TestFromJSONValueRendering(t *testing.T) {
	input := `[{"num":1.50,"null":null,"nested":[1,2],"bool":false}]`
	tbl, err := FromJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("FromJSON() error: %v", err)
	}
	got := tbl.String()

	for _, want := range []string{"1.50", "[1,2]", "false"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered table missing %q:\n%s", want, got)
		}
	}
}

func TestFromJSONArrays(t *testing.T) {
	tbl, err := FromJSON(strings.NewReader(`[["a","b"],["c","d"]]`))
	if err != nil {
		t.Fatalf("FromJSON() error: %v", err)
	}

	expect(t, tbl.String(),
		"+-+-+",
		"|a|b|",
		"+-+-+",
		"|c|d|",
		"+-+-+",
	)
}

func TestFromJSONErrors(t *testing.T) {
	if _, err := FromJSON(strings.NewReader("[]")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty array error = %v, want INVALID_INPUT", err)
	}
	if _, err := FromJSON(strings.NewReader("{not valid")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("malformed input error = %v, want INVALID_FORMAT", err)
	}
	if _, err := FromJSON(strings.NewReader("[1,2]")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("scalar rows error = %v, want INVALID_FORMAT", err)
	}
}
