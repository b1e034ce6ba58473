package models

// ClientSummary สรุปการเข้าใช้งานของลูกค้าหนึ่งคน (หนึ่งแถวต่อคู่ clientId+name)
type ClientSummary struct {
	ClientID        Value   `json:"clientId"`
	Name            string  `json:"name"`
	ID              Value   `json:"id"`               // ค่า max ของ clientId ในกลุ่ม (ซ้ำกับ clientId)
	TotalCheckins   int     `json:"total_checkins"`   // จำนวนครั้งที่เข้าใช้งาน
	AverageDuration float64 `json:"average_duration"` // ค่าเฉลี่ยเวลาที่ใช้ (นาที)
	LastStartDate   string  `json:"last_start_date"`  // การเช็คอินล่าสุด
	Status          string  `json:"status"`           // สถานะจากแถวสุดท้ายตามลำดับในไฟล์
}

// CheckinTimeBucket จำนวนการเช็คอินต่อช่วงเวลา (วันในสัปดาห์ + ชั่วโมง)
type CheckinTimeBucket struct {
	DayOfWeek    string `json:"day_of_week"` // ชื่อวันภาษาอังกฤษแบบเต็ม เช่น "Monday"
	HourOfDay    int    `json:"hour_of_day"` // 0-23
	CheckinCount int    `json:"checkin_count"`
}

// DashboardSummary ผลลัพธ์การคำนวณสถิติทั้งหมดของไฟล์ CSV หนึ่งไฟล์
// ค่าเฉลี่ยรวมเป็น pointer เพื่อให้ input ว่างส่งออกเป็น null
type DashboardSummary struct {
	ClientSummary               []ClientSummary     `json:"client_summary"`
	CheckinsByDayTime           []CheckinTimeBucket `json:"checkins_by_day_time"`
	UniqueActiveClients         int                 `json:"unique_active_clients"`
	UniqueInactiveClients       int                 `json:"unique_inactive_clients"`
	AverageDurationOverall      *float64            `json:"average_duration_overall"`
	AverageTotalCheckinsOverall *float64            `json:"average_total_checkins_overall"`
}

// DashboardParams ตัวเลือกการอัปโหลด CSV
type DashboardParams struct {
	Delimiter string `json:"delimiter" query:"delimiter" validate:"omitempty,len=1" example:","` // ตัวคั่นคอลัมน์ (ค่าเริ่มต้น ",")
}

// Comma คืนตัวคั่นคอลัมน์สำหรับ csv.Reader
func (p *DashboardParams) Comma() rune {
	if p.Delimiter == "" {
		return ','
	}
	return []rune(p.Delimiter)[0]
}
