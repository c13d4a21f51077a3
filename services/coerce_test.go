package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"resort-admin/utils"
)

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	payload, err := DecodeLoose(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return payload
}

func TestLooseIntField(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{"number", `{"n": 3}`, 3, false},
		{"numeric text", `{"n": "4"}`, 4, false},
		{"padded text", `{"n": " 12 "}`, 12, false},
		{"absent", `{}`, 7, false},
		{"null", `{"n": null}`, 7, false},
		{"bool falls back", `{"n": true}`, 7, false},
		{"array falls back", `{"n": [1]}`, 7, false},
		{"fractional number falls back", `{"n": 2.5}`, 7, false},
		{"malformed text", `{"n": "three"}`, 0, true},
		{"fractional text", `{"n": "2.5"}`, 0, true},
		{"integral decimal text", `{"n": "12.0"}`, 0, true},
		{"exponent text", `{"n": "1e3"}`, 0, true},
		{"oversized text", `{"n": "99999999999999999999"}`, 0, true},
		{"text just past int32", `{"n": "2147483648"}`, 0, true},
		{"int32 max text", `{"n": "2147483647"}`, 2147483647, false},
		{"negative text", `{"n": "-2"}`, -2, false},
		{"oversized number falls back", `{"n": 99999999999999999999}`, 7, false},
		{"number just past int32 falls back", `{"n": -2147483649}`, 7, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := looseField(decode(t, tc.body), "n").Int(7)
			if tc.wantErr {
				if utils.KindOf(err) != utils.KindValidation {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}

func TestLooseDecimalField(t *testing.T) {
	def := decimal.RequireFromString("100.00")
	cases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"number", `{"p": 149.99}`, "149.99", false},
		{"text", `{"p": "0.10"}`, "0.1", false},
		{"large text keeps precision", `{"p": "12345678901.23"}`, "12345678901.23", false},
		{"absent", `{}`, "100", false},
		{"object falls back", `{"p": {"v": 1}}`, "100", false},
		{"malformed text", `{"p": "12,50"}`, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := looseField(decode(t, tc.body), "p").Decimal(def)
			if tc.wantErr {
				if utils.KindOf(err) != utils.KindValidation {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestDecodeLooseRejectsNonObject(t *testing.T) {
	if _, err := DecodeLoose(strings.NewReader(`[1,2]`)); err == nil {
		t.Fatal("expected error for array body")
	}
	payload, err := DecodeLoose(strings.NewReader(`null`))
	if err != nil || payload == nil {
		t.Fatalf("null body should decode to empty map, got %v %v", payload, err)
	}
}
