package services

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"resort-admin/utils"
)

type looseKind int

const (
	looseAbsent looseKind = iota
	looseNumber
	looseText
	looseOther
)

// looseValue is one field of a loosely typed create payload, classified by
// the JSON shape it arrived in.
type looseValue struct {
	field string
	kind  looseKind
	num   decimal.Decimal
	text  string
}

// DecodeLoose decodes a JSON object keeping numbers as json.Number so no
// precision is lost before a field is coerced.
func DecodeLoose(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

func looseField(payload map[string]any, field string) looseValue {
	raw, ok := payload[field]
	if !ok || raw == nil {
		return looseValue{field: field, kind: looseAbsent}
	}
	switch v := raw.(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return looseValue{field: field, kind: looseOther}
		}
		return looseValue{field: field, kind: looseNumber, num: d}
	case float64:
		return looseValue{field: field, kind: looseNumber, num: decimal.NewFromFloat(v)}
	case int:
		return looseValue{field: field, kind: looseNumber, num: decimal.NewFromInt(int64(v))}
	case string:
		return looseValue{field: field, kind: looseText, text: strings.TrimSpace(v)}
	default:
		return looseValue{field: field, kind: looseOther}
	}
}

var (
	minLooseInt = decimal.NewFromInt(math.MinInt32)
	maxLooseInt = decimal.NewFromInt(math.MaxInt32)
)

// Int accepts a 32-bit integral number or plain integer text. Absent
// fields, other JSON types and numbers that are non-integral or out of
// range take def; any other text is rejected.
func (v looseValue) Int(def int) (int, error) {
	switch v.kind {
	case looseNumber:
		if !v.num.IsInteger() || v.num.LessThan(minLooseInt) || v.num.GreaterThan(maxLooseInt) {
			return def, nil
		}
		return int(v.num.IntPart()), nil
	case looseText:
		n, err := strconv.ParseInt(v.text, 10, 32)
		if err != nil {
			return 0, utils.NewValidationError(fmt.Sprintf("Invalid %s: %q", v.field, v.text))
		}
		return int(n), nil
	default:
		return def, nil
	}
}

// Decimal accepts a number or numeric text, parsed exactly.
func (v looseValue) Decimal(def decimal.Decimal) (decimal.Decimal, error) {
	switch v.kind {
	case looseNumber:
		return v.num, nil
	case looseText:
		d, err := decimal.NewFromString(v.text)
		if err != nil {
			return decimal.Zero, utils.NewValidationError(fmt.Sprintf("Invalid %s: %q", v.field, v.text))
		}
		return d, nil
	default:
		return def, nil
	}
}

func looseString(payload map[string]any, field string) string {
	s, _ := payload[field].(string)
	return s
}

func looseBool(payload map[string]any, field string) bool {
	b, _ := payload[field].(bool)
	return b
}
