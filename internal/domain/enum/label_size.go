package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LabelSize represents a named physical label size
type LabelSize int

const (
	LabelSizeSmall  LabelSize = 0
	LabelSizeMedium LabelSize = 1
	LabelSizeLarge  LabelSize = 2
	LabelSizeCustom LabelSize = 3
)

func (s LabelSize) String() string {
	names := [...]string{"small", "medium", "large", "custom"}
	if int(s) < 0 || int(s) >= len(names) {
		return "medium"
	}
	return names[s]
}

func (s LabelSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LabelSize) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = LabelSize(i)
		return nil
	}
	switch str {
	case "small":
		*s = LabelSizeSmall
	case "large":
		*s = LabelSizeLarge
	case "custom":
		*s = LabelSizeCustom
	default:
		// Unknown names land on medium, same as Scan and String.
		*s = LabelSizeMedium
	}
	return nil
}

func (s LabelSize) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *LabelSize) Scan(value interface{}) error {
	if value == nil {
		*s = LabelSizeMedium
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = LabelSize(v)
	case int:
		*s = LabelSize(v)
	}
	return nil
}
