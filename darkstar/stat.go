package darkstar

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// Stat is a numeric attribute that may be replaced by a text placeholder
// when the owning record is hidden from the viewer.
type Stat struct {
	num  float64
	text string
}

func NumStat(v float64) Stat { return Stat{num: v} }

func TextStat(s string) Stat { return Stat{text: s} }

// IsText reports whether the stat holds a placeholder.
func (s Stat) IsText() bool { return s.text != "" }

func (s Stat) Float() float64 { return s.num }

func (s Stat) Int() int { return int(s.num) }

func (s Stat) String() string {
	if s.IsText() {
		return s.text
	}
	return strconv.FormatFloat(s.num, 'f', -1, 64)
}

func (s Stat) MarshalJSON() ([]byte, error) {
	if s.IsText() {
		return json.Marshal(s.text)
	}
	return []byte(strconv.FormatFloat(s.num, 'f', -1, 64)), nil
}

func (s *Stat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var t string
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		*s = TextStat(t)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*s = Stat{}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*s = NumStat(v)
	return nil
}
