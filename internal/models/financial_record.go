package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FinancialRecord represents one annual income-statement entry returned by the upstream provider.
// Only date, revenue and netIncome take part in filtering; the upstream object is kept
// verbatim so every other upstream field passes through untouched.
type FinancialRecord struct {
	Date            string
	Symbol          string
	Revenue         int64
	NetIncome       int64
	GrossProfit     Value
	OperatingIncome Value
	EPS             Value

	raw json.RawMessage
}

// incomeStatement is the wire shape of an upstream record. Only the required
// fields are typed; display fields are kept as received whatever their type.
type incomeStatement struct {
	Date            *string `json:"date" validate:"required"`
	Symbol          Value   `json:"symbol"`
	Revenue         *int64  `json:"revenue" validate:"required"`
	NetIncome       *int64  `json:"netIncome" validate:"required"`
	GrossProfit     Value   `json:"grossProfit"`
	OperatingIncome Value   `json:"operatingIncome"`
	EPS             Value   `json:"eps"`
}

// Value is an upstream field relayed without interpretation.
type Value json.RawMessage

func (v *Value) UnmarshalJSON(data []byte) error {
	*v = append((*v)[:0], data...)
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

// String renders the value for display: strings unquoted, null or absent as
// empty, anything else as its JSON text.
func (v Value) String() string {
	if len(v) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}

// UnmarshalJSON decodes an upstream record and rejects it when a required field is missing.
func (r *FinancialRecord) UnmarshalJSON(data []byte) error {
	var wire incomeStatement
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("invalid income statement: %w", err)
	}
	if err := validate.Struct(wire); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("income statement missing required field %q", fieldErrs[0].Field())
		}
		return err
	}

	*r = FinancialRecord{
		Date:            *wire.Date,
		Symbol:          wire.Symbol.String(),
		Revenue:         *wire.Revenue,
		NetIncome:       *wire.NetIncome,
		GrossProfit:     wire.GrossProfit,
		OperatingIncome: wire.OperatingIncome,
		EPS:             wire.EPS,
		raw:             append(json.RawMessage(nil), data...),
	}
	return nil
}

// MarshalJSON re-emits the upstream object as received. Records built in code
// (without an upstream payload) are encoded from their typed fields.
func (r FinancialRecord) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	return json.Marshal(struct {
		Date            string `json:"date"`
		Symbol          string `json:"symbol"`
		Revenue         int64  `json:"revenue"`
		NetIncome       int64  `json:"netIncome"`
		GrossProfit     Value  `json:"grossProfit"`
		OperatingIncome Value  `json:"operatingIncome"`
		EPS             Value  `json:"eps"`
	}{
		Date:            r.Date,
		Symbol:          r.Symbol,
		Revenue:         r.Revenue,
		NetIncome:       r.NetIncome,
		GrossProfit:     r.GrossProfit,
		OperatingIncome: r.OperatingIncome,
		EPS:             r.EPS,
	})
}
