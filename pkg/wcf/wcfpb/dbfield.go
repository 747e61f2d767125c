package wcfpb

import (
	"strconv"
	"strings"
)

// Column types reported in DbField.Type. The SDK mirrors SQLite's storage
// classes and sends integers and floats as text.
const (
	ColumnInteger int32 = 1
	ColumnFloat   int32 = 2
	ColumnText    int32 = 3
	ColumnBlob    int32 = 4
	ColumnNull    int32 = 5
)

// Value converts the field by its declared type: int64, float64, string,
// []byte or nil. Unparseable numbers yield their zero value.
func (m *DbField) Value() any {
	if m == nil {
		return nil
	}
	switch m.Type {
	case ColumnInteger:
		v, _ := m.Int()
		return v
	case ColumnFloat:
		v, _ := strconv.ParseFloat(strings.TrimSpace(string(m.Content)), 64)
		return v
	case ColumnText:
		return string(m.Content)
	case ColumnBlob:
		return m.Content
	default:
		return nil
	}
}

// Int parses the content as a decimal integer.
func (m *DbField) Int() (int64, bool) {
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(string(m.Content)), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Text returns the content as a string regardless of type.
func (m *DbField) Text() string {
	if m == nil {
		return ""
	}
	return string(m.Content)
}
