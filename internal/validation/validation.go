// Package validation holds the request-level rules shared by the account
// lifecycle and resource controllers. Every rule returns the client-facing
// message, or an empty string when the value passes; ordering of checks is
// part of the API contract and is decided by the caller.
package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequestInvalid     = "Request is invalid."
	msgPayloadEmpty       = "Payload is empty."
	msgPriceNotANumber    = "Price should be a number."
	msgPriceInvalid       = "Price should be greater than 0."
	msgEmailInvalid       = "Email is invalid."
	msgPaymentModeInvalid = "Please provide a valid payment mode."
	msgInvalidStatus      = "Invalid status provided."
)

var validate = validator.New()

// Field is one named payload entry for RequiredFields. Order matters: the
// first missing field is the one reported.
type Field struct {
	Name  string
	Value interface{}
}

// RequiredFields rejects an empty payload and then each field that is nil or
// an empty string, in the order given.
func RequiredFields(fields ...Field) string {
	if len(fields) == 0 {
		return msgPayloadEmpty
	}

	for _, f := range fields {
		if isMissing(f.Value) {
			return fmt.Sprintf("%s is required. %s", capitalize(f.Name), msgRequestInvalid)
		}
	}

	return ""
}

func isMissing(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}

func capitalize(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Price accepts the wire value as either a JSON number or a numeric string
// and returns the parsed amount. A non-numeric value or a negative amount is
// rejected.
func Price(value interface{}) (float64, string) {
	var price float64

	switch v := value.(type) {
	case float64:
		price = v
	case int:
		price = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, msgPriceNotANumber
		}
		price = parsed
	default:
		return 0, msgPriceNotANumber
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, msgPriceNotANumber
	}
	if price < 0 {
		return 0, msgPriceInvalid
	}

	return price, ""
}

// Email checks the address format.
func Email(email string) string {
	if err := validate.Var(email, "email"); err != nil {
		return msgEmailInvalid
	}
	return ""
}

// PaymentMode checks paidVia against the fixed enumeration.
func PaymentMode(mode string, accepted []string) string {
	for _, m := range accepted {
		if mode == m {
			return ""
		}
	}
	return msgPaymentModeInvalid
}

// CategoryStatus checks a status value against the fixed enumeration.
func CategoryStatus(status string, accepted []string) string {
	for _, s := range accepted {
		if status == s {
			return ""
		}
	}
	return msgInvalidStatus
}
