package order

import (
	"encoding/json"

	"orders/internal/pkg/errs"
)

// Address is the opaque delivery destination supplied by the caller.
// It is forwarded verbatim to the delivery service and never interpreted here.
type Address json.RawMessage

// NewAddress wraps a raw JSON document as an Address.
// The document must be non-empty, syntactically valid JSON.
func NewAddress(raw json.RawMessage) (Address, error) {
	address := Address(raw)
	if err := address.Validate(); err != nil {
		return nil, err
	}

	return address, nil
}

// Raw returns the underlying JSON document.
func (a Address) Raw() json.RawMessage {
	return json.RawMessage(a)
}

// Validate checks that the address holds a valid JSON document.
func (a Address) Validate() error {
	if len(a) == 0 {
		return errs.NewValueIsRequiredError("address")
	}
	if !json.Valid(a) {
		return errs.NewValueIsInvalidError("address")
	}

	return nil
}

// MarshalJSON emits the wrapped document unchanged.
func (a Address) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}
	return a, nil
}

// UnmarshalJSON stores the document verbatim.
func (a *Address) UnmarshalJSON(data []byte) error {
	*a = append((*a)[0:0], data...)
	return nil
}
