package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/djbhash/internal/domain"
)

// Select evaluates a JSONPath expression over a JSON document and returns
// the selected values as strings, one per match.
//
// Strings are returned verbatim and numbers exactly as written in the document.
// Booleans become true or false; objects and arrays are re-encoded as compact
// JSON. A wildcard or slice result is flattened one level so that
// "$.users[*].name" yields one value per user.
func Select(body []byte, expr string) ([]string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, invalid(expr, errors.New("empty jsonpath expression"))
	}

	doc, err := decode(body)
	if err != nil {
		return nil, invalid(expr, fmt.Errorf("input is not valid JSON: %w", err))
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, invalid(expr, fmt.Errorf("jsonpath error: %w", err))
	}

	var values []any
	if arr, ok := val.([]any); ok {
		values = arr
	} else {
		values = []any{val}
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		s, err := toString(v)
		if err != nil {
			return nil, invalid(expr, fmt.Errorf("cannot convert value to string: %w", err))
		}
		out = append(out, s)
	}

	if len(out) == 0 {
		return nil, &domain.OpError{
			Op:   "extract.select",
			Kind: domain.KindNotFound,
			Path: expr,
			Err:  errors.New("no value found"),
		}
	}
	return out, nil
}

// decode keeps numbers as json.Number so integers are not rounded through
// float64.
func decode(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	return doc, nil
}

func invalid(expr string, err error) error {
	return &domain.OpError{Op: "extract.select", Kind: domain.KindInvalidInput, Path: expr, Err: err}
}

func toString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case float64, bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
