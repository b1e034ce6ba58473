package dashboard

import "fmt"

// MissingColumnsError ไฟล์ CSV ขาดคอลัมน์ที่จำเป็น
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %v", e.Columns)
}

// DateParseError แปลงค่าวันเวลาของแถวใดแถวหนึ่งไม่ได้ - ทั้งชุดข้อมูลถือว่าล้มเหลว
type DateParseError struct {
	Column string
	Value  string
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("cannot parse %s value %q as a timestamp", e.Column, e.Value)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
