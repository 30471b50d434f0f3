package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/hydralog/go-water-monitor/internal/core/constants"
)

// Entry is one logged intake event. Its identity within a day is the
// timestamp value; edit and delete match on it exactly.
type Entry struct {
	Amount    float64
	Timestamp string
	Note      string

	// Extra holds unrecognized document fields so a load-save cycle
	// never drops them
	Extra map[string]interface{}
}

// NewEntry builds an entry stamped with loggedAt at nanosecond precision
func NewEntry(amount float64, note string, loggedAt time.Time) Entry {
	return Entry{
		Amount:    amount,
		Timestamp: loggedAt.Format(constants.TimestampLayout),
		Note:      note,
	}
}

// LoggedAt parses the entry's timestamp
func (e Entry) LoggedAt() (time.Time, error) {
	return ParseTimestamp(e.Timestamp)
}

// UnmarshalJSON decodes the document shape {"amount_ml": n, "timestamp": s,
// "note": s, ...}, keeping unknown keys in Extra
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Entry{}
	for key, value := range raw {
		switch key {
		case "amount_ml":
			amount, err := coerceAmount(value)
			if err != nil {
				return err
			}
			e.Amount = amount
		case "timestamp":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("entry timestamp must be a string, got %T", value)
			}
			e.Timestamp = s
		case "note":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("entry note must be a string, got %T", value)
			}
			e.Note = s
		default:
			if e.Extra == nil {
				e.Extra = make(map[string]interface{})
			}
			e.Extra[key] = value
		}
	}
	return nil
}

// MarshalJSON re-emits the document shape with Extra fields merged back
// in. Keys are sorted so repeated saves of the same log are
// byte-identical; an empty note is omitted, matching documents written
// before notes existed.
func (e Entry) MarshalJSON() ([]byte, error) {
	raw := make(map[string]interface{}, len(e.Extra)+3)
	for k, v := range e.Extra {
		raw[k] = v
	}
	raw["amount_ml"] = e.Amount
	raw["timestamp"] = e.Timestamp
	if e.Note != "" {
		raw["note"] = e.Note
	}
	return sonic.ConfigStd.Marshal(raw)
}

// coerceAmount accepts the numeric shapes an imported document may carry
func coerceAmount(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		amount, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("entry amount %q is not numeric", n)
		}
		return amount, nil
	default:
		return 0, fmt.Errorf("entry amount has unsupported type %T", v)
	}
}
