package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderState represents the workshop state of an order
type OrderState int

const (
	OrderStatePending    OrderState = 0
	OrderStateInProgress OrderState = 1
	OrderStateFinalized  OrderState = 2
)

func (s OrderState) String() string {
	switch s {
	case OrderStatePending:
		return "PENDIENTE"
	case OrderStateInProgress:
		return "EN_CURSO"
	case OrderStateFinalized:
		return "FINALIZADO"
	}
	return fmt.Sprintf("OrderState(%d)", int(s))
}

// ParseOrderState maps a wire value onto an OrderState. Anything outside the
// three known states is an error.
func ParseOrderState(value string) (OrderState, error) {
	switch value {
	case "PENDIENTE":
		return OrderStatePending, nil
	case "EN_CURSO":
		return OrderStateInProgress, nil
	case "FINALIZADO":
		return OrderStateFinalized, nil
	}
	return 0, fmt.Errorf("unknown order state %q", value)
}

func (s OrderState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderState(i)
		return nil
	}
	parsed, err := ParseOrderState(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s OrderState) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderState) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatePending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderState(v)
	case int:
		*s = OrderState(v)
	}
	return nil
}
