package dashboard

import (
	"Backend-LevelOneGym/src/models"
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// RequiredColumns คอลัมน์ที่ไฟล์ CSV ต้องมีครบก่อนเริ่มคำนวณ
var RequiredColumns = []string{"clientId", "status", "startDate", "endDate", "name"}

// timezone ของสาขา (UTC-4 ไม่มี daylight saving)
const gymTimezone = "America/Campo_Grande"

// เวลาเริ่ม/จบและระยะเวลาของแถวหนึ่ง หลัง normalize timezone แล้ว
type rowTimes struct {
	start    time.Time
	end      time.Time
	duration float64 // นาที อาจติดลบได้ถ้า endDate < startDate
}

type clientGroup struct {
	clientID  models.Value
	name      string
	maxID     models.Value
	durations []float64
	lastStart time.Time
	status    string
}

type bucketKey struct {
	day  string
	hour int
}

// Aggregate คำนวณสถิติ dashboard ทั้งหมดจากตาราง check-in ในครั้งเดียว
// เป็น pure function - input เดิมให้ผลลัพธ์เดิมเสมอ ไม่มี side effect
func Aggregate(table *models.Table) (*models.DashboardSummary, error) {
	// 1) ตรวจสอบคอลัมน์ที่จำเป็นก่อน ถ้าขาดไม่ต้องประมวลผลแถวใด ๆ
	if missing := table.MissingColumns(RequiredColumns); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	loc, err := time.LoadLocation(gymTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", gymTimezone, err)
	}

	// 2) แปลงวันเวลาให้ครบทุกแถวก่อนคำนวณ - แถวไหนพังให้ล้มทั้งชุด
	times := make([]rowTimes, len(table.Rows))
	for i, row := range table.Rows {
		start, err := parseTimestamp("startDate", row["startDate"], loc)
		if err != nil {
			return nil, err
		}
		end, err := parseTimestamp("endDate", row["endDate"], loc)
		if err != nil {
			return nil, err
		}
		// 3) ระยะเวลาเป็นนาที ไม่ clamp ค่าติดลบ
		times[i] = rowTimes{
			start:    start,
			end:      end,
			duration: end.Sub(start).Seconds() / 60,
		}
	}

	groups := make(map[string]*clientGroup)
	var order []string

	activeClients := make(map[string]struct{})
	inactiveClients := make(map[string]struct{})
	bucketCounts := make(map[bucketKey]int)

	// 4) จัดกลุ่มตาม (clientId, name) ตามลำดับที่พบครั้งแรก
	for i, row := range table.Rows {
		clientID := row["clientId"]
		name := row["name"].String()
		status := row["status"].String()

		key := clientID.Key() + "\x00" + name
		g, ok := groups[key]
		if !ok {
			g = &clientGroup{clientID: clientID, name: name, maxID: clientID}
			groups[key] = g
			order = append(order, key)
		}

		g.maxID = maxValue(g.maxID, clientID)
		g.durations = append(g.durations, times[i].duration)
		if len(g.durations) == 1 || times[i].start.After(g.lastStart) {
			g.lastStart = times[i].start
		}
		// แถวสุดท้ายตามลำดับในไฟล์เป็นผู้กำหนด status ไม่ใช่แถวที่เวลาล่าสุด
		g.status = status

		// 5) นับลูกค้าไม่ซ้ำตาม status - ค่าอื่นนอกจาก active/inactive ไม่นับ
		switch status {
		case "active":
			activeClients[clientID.Key()] = struct{}{}
		case "inactive":
			inactiveClients[clientID.Key()] = struct{}{}
		}

		// 6) histogram ตาม (วันในสัปดาห์, ชั่วโมง) ของเวลาเริ่มหลังแปลง timezone
		bucketCounts[bucketKey{
			day:  times[i].start.Weekday().String(),
			hour: times[i].start.Hour(),
		}]++
	}

	summaries := make([]models.ClientSummary, 0, len(order))
	groupDurations := make([]float64, 0, len(order))
	groupCheckins := make([]float64, 0, len(order))
	for _, key := range order {
		g := groups[key]
		avg, _ := stats.Mean(g.durations)
		summaries = append(summaries, models.ClientSummary{
			ClientID:        g.clientID,
			Name:            g.name,
			ID:              g.maxID,
			TotalCheckins:   len(g.durations),
			AverageDuration: avg,
			LastStartDate:   g.lastStart.Format(lastStartLayout),
			Status:          g.status,
		})
		groupDurations = append(groupDurations, avg)
		groupCheckins = append(groupCheckins, float64(len(g.durations)))
	}

	buckets := make([]models.CheckinTimeBucket, 0, len(bucketCounts))
	for k, n := range bucketCounts {
		buckets = append(buckets, models.CheckinTimeBucket{
			DayOfWeek:    k.day,
			HourOfDay:    k.hour,
			CheckinCount: n,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].DayOfWeek != buckets[j].DayOfWeek {
			return buckets[i].DayOfWeek < buckets[j].DayOfWeek
		}
		return buckets[i].HourOfDay < buckets[j].HourOfDay
	})

	result := &models.DashboardSummary{
		ClientSummary:         summaries,
		CheckinsByDayTime:     buckets,
		UniqueActiveClients:   len(activeClients),
		UniqueInactiveClients: len(inactiveClients),
	}

	// 7) ค่าเฉลี่ยรวมเป็นค่าเฉลี่ยของค่าเฉลี่ยรายกลุ่ม (ไม่ถ่วงน้ำหนักตามขนาดกลุ่ม)
	// input ว่าง -> ปล่อยเป็น nil ให้ serialize เป็น null
	if len(summaries) > 0 {
		durationOverall, _ := stats.Mean(groupDurations)
		checkinsOverall, _ := stats.Mean(groupCheckins)
		result.AverageDurationOverall = &durationOverall
		result.AverageTotalCheckinsOverall = &checkinsOverall
	}

	return result, nil
}
