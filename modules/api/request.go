package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// decodeObject parses body as a non-empty JSON object. Anything else is
// reported as msgNoData.
func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return nil, &InputError{Message: msgNoData}
	}
	return fields, nil
}

// field returns the raw value of key, treating JSON null as absent.
func field(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, false
	}
	return raw, true
}

// parseNumber accepts a JSON number or a string holding a decimal number.
// Out-of-range values saturate to ±Inf. Booleans and other types fail.
func parseNumber(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			return parseFloat(n.String())
		}
		return 0, &InputError{Message: msgInvalidNumber}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, &InputError{Message: msgInvalidNumber}
	}
	return parseFloat(strings.TrimSpace(s))
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &InputError{Message: msgInvalidNumber}
	}
	return f, nil
}

// calculateInput is a decoded POST /api/calculate body.
type calculateInput struct {
	Operation string
	A         float64
	B         *float64
}

// decodeCalculate validates the calculate body shape. A non-string
// operation is passed through as its JSON text so the evaluator rejects
// it as an unknown operation.
func decodeCalculate(body []byte) (calculateInput, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return calculateInput{}, err
	}

	opRaw, hasOp := field(fields, "operation")
	aRaw, hasA := field(fields, "a")
	if !hasOp || !hasA {
		return calculateInput{}, &InputError{Message: msgMissingParameters}
	}

	var in calculateInput
	if in.A, err = parseNumber(aRaw); err != nil {
		return calculateInput{}, err
	}
	if bRaw, ok := field(fields, "b"); ok {
		b, err := parseNumber(bRaw)
		if err != nil {
			return calculateInput{}, err
		}
		in.B = &b
	}

	if err := json.Unmarshal(opRaw, &in.Operation); err != nil {
		in.Operation = string(bytes.TrimSpace(opRaw))
	}
	return in, nil
}

// decodeEvaluate extracts the expression. The string is returned as
// received; blank expressions are left to the evaluator.
func decodeEvaluate(body []byte) (string, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return "", &InputError{Message: msgNoExpression}
	}

	raw, ok := field(fields, "expression")
	if !ok {
		return "", &InputError{Message: msgNoExpression}
	}

	var expression string
	if err := json.Unmarshal(raw, &expression); err != nil {
		return "", &InputError{Message: msgExpressionNotText}
	}
	return expression, nil
}
