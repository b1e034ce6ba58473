package dashboard

import (
	"Backend-LevelOneGym/src/models"
	"errors"
	"strings"
	"time"
)

// รูปแบบวันเวลาที่ยอมรับ - ค่าที่ไม่มี offset ถือว่าเป็น UTC
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// รูปแบบของ last_start_date ใน response
const lastStartLayout = "2006-01-02 15:04:05-07:00"

// parseTimestamp แปลงค่าในเซลล์เป็นเวลาใน timezone ของสาขา
func parseTimestamp(column string, v models.Value, loc *time.Location) (time.Time, error) {
	if v.IsNull() {
		return time.Time{}, &DateParseError{Column: column, Value: "", Err: errors.New("empty value")}
	}

	s := strings.TrimSpace(v.String())
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t.In(loc), nil
		}
		lastErr = err
	}
	return time.Time{}, &DateParseError{Column: column, Value: s, Err: lastErr}
}

// maxValue เปรียบเทียบค่าสองค่า - ตัวเลขเทียบแบบตัวเลข นอกนั้นเทียบแบบข้อความ
func maxValue(a, b models.Value) models.Value {
	if a.Kind == models.ValueNumber && b.Kind == models.ValueNumber {
		if b.Number > a.Number {
			return b
		}
		return a
	}
	if b.Key() > a.Key() {
		return b
	}
	return a
}
