package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValueKind ชนิดของค่าในเซลล์ CSV
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueText
	ValueNumber
)

// Value ค่าในเซลล์หนึ่งของตาราง - เก็บทั้งข้อความดิบและค่าตัวเลข (ถ้าแปลงได้)
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
}

// InferValue แปลงข้อความดิบจาก CSV เป็น Value
// ค่าว่าง -> null, แปลงเป็นตัวเลขได้ -> number, อื่น ๆ -> text
func InferValue(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{Kind: ValueNull}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Value{Kind: ValueNumber, Text: s, Number: n}
	}
	return Value{Kind: ValueText, Text: raw}
}

// IsNull ตรวจสอบว่าเป็นค่าว่างหรือไม่
func (v Value) IsNull() bool {
	return v.Kind == ValueNull
}

// String คืนข้อความดิบของค่า (ค่าว่างคืน "")
func (v Value) String() string {
	return v.Text
}

// Key คืนค่า canonical string สำหรับใช้เป็น key ในการจัดกลุ่ม
// ตัวเลขถูก normalize เพื่อให้ "1" กับ "1.0" เป็นลูกค้าคนเดียวกัน
func (v Value) Key() string {
	if v.Kind == ValueNumber {
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	}
	return v.Text
}

// MarshalJSON ส่งออกเป็นชนิด JSON ตามชนิดของค่า
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueNumber:
		return json.Marshal(v.Number)
	case ValueText:
		return json.Marshal(v.Text)
	default:
		return []byte("null"), nil
	}
}

// Row แถวหนึ่งของตาราง - map จากชื่อคอลัมน์ไปยังค่า
type Row map[string]Value

// Table ตารางข้อมูลที่อ่านจากไฟล์ CSV
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn ตรวจสอบว่าตารางมีคอลัมน์นี้หรือไม่
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// MissingColumns คืนรายชื่อคอลัมน์ที่จำเป็นแต่ไม่มีในตาราง (ตามลำดับที่ร้องขอ)
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}
