package registro

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"
)

// FechaLayout is the wire format of every calendar date in the API.
const FechaLayout = "2006-01-02"

// Fecha is a calendar date exchanged as "YYYY-MM-DD".
type Fecha struct {
	time.Time
}

func ParseFecha(s string) (Fecha, error) {
	t, err := time.Parse(FechaLayout, s)
	if err != nil {
		return Fecha{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Fecha{Time: t}, nil
}

func (f Fecha) String() string {
	return f.Format(FechaLayout)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.String())), nil
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("invalid date %s: expected a quoted YYYY-MM-DD string", string(b))
	}
	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Date converts to the storage representation; nil and zero dates map to NULL.
func (f *Fecha) Date() *datatypes.Date {
	if f == nil || f.IsZero() {
		return nil
	}
	d := datatypes.Date(f.Time)
	return &d
}

// FechaFromDate converts a stored date back to its wire form.
func FechaFromDate(d *datatypes.Date) *Fecha {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	if t.IsZero() {
		return nil
	}
	return &Fecha{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}
