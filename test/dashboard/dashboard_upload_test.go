package dashboard

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Backend-LevelOneGym/src/routes"
	"Backend-LevelOneGym/test"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

const sampleCSV = "clientId,name,status,startDate,endDate\n" +
	"1,A,active,2024-01-01T10:00:00Z,2024-01-01T10:30:00Z\n" +
	"1,A,active,2024-01-02T10:00:00Z,2024-01-02T10:45:00Z\n" +
	"2,B,inactive,2024-01-01T12:00:00Z,2024-01-01T13:00:00Z\n"

func newTestApp() *fiber.App {
	app := fiber.New()
	routes.InitRoutes(app)
	return app
}

// multipartBody สร้าง multipart body ที่มีไฟล์ CSV หนึ่งไฟล์
func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

func TestUploadDashboardSuccess(t *testing.T) {
	timer := test.NewTestTimer("Upload Dashboard Success")
	defer func() {
		test.PerformanceAssertion(t, "Upload Dashboard Success", timer.Stop(), 500*time.Millisecond)
	}()

	app := newTestApp()
	body, contentType := multipartBody(t, "file", "checkins.csv", sampleCSV)

	req := httptest.NewRequest(fiber.MethodPost, "/dashboard/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Upload-Id"))

	decoded := decodeBody(t, resp)
	assert.Equal(t, "CSV file processed successfully", decoded["message"])
	assert.Equal(t, float64(1), decoded["unique_active_clients"])
	assert.Equal(t, float64(1), decoded["unique_inactive_clients"])

	summaries := decoded["client_summary"].([]interface{})
	assert.Len(t, summaries, 2)

	first := summaries[0].(map[string]interface{})
	// clientId เป็นตัวเลขในไฟล์ ต้องออกมาเป็น JSON number
	assert.Equal(t, float64(1), first["clientId"])
	assert.Equal(t, float64(2), first["total_checkins"])
	assert.InDelta(t, 37.5, first["average_duration"].(float64), 1e-9)

	buckets := decoded["checkins_by_day_time"].([]interface{})
	total := 0.0
	for _, b := range buckets {
		total += b.(map[string]interface{})["checkin_count"].(float64)
	}
	assert.Equal(t, 3.0, total)
}

func TestUploadDashboardWrongMethod(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/dashboard/upload", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestUploadDashboardMissingContentType(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(fiber.MethodPost, "/dashboard/upload", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	decoded := decodeBody(t, resp)
	assert.Equal(t, "Content-Type header is missing", decoded["message"])
}

func TestUploadDashboardNoFilePart(t *testing.T) {
	app := newTestApp()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	assert.NoError(t, writer.WriteField("note", "no file here"))
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/dashboard/upload", body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	decoded := decodeBody(t, resp)
	assert.Equal(t, "No CSV file found in the request", decoded["message"])
}

func TestUploadDashboardMalformedCSV(t *testing.T) {
	app := newTestApp()
	body, contentType := multipartBody(t, "file", "broken.csv",
		"clientId,name,status,startDate,endDate\n1,\"unclosed,active\n")

	req := httptest.NewRequest(fiber.MethodPost, "/dashboard/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	decoded := decodeBody(t, resp)
	assert.Equal(t, "Error parsing CSV file. Please check the file format.", decoded["message"])
}

func TestUploadDashboardMissingColumns(t *testing.T) {
	app := newTestApp()
	body, contentType := multipartBody(t, "file", "checkins.csv",
		"clientId,name,status,startDate\n1,A,active,2024-01-01T10:00:00Z\n")

	req := httptest.NewRequest(fiber.MethodPost, "/dashboard/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	decoded := decodeBody(t, resp)
	assert.Contains(t, decoded["message"], "Missing required columns")
	assert.Contains(t, decoded["message"], "endDate")
}

func TestUploadDashboardBadDate(t *testing.T) {
	app := newTestApp()
	body, contentType := multipartBody(t, "file", "checkins.csv",
		"clientId,name,status,startDate,endDate\n1,A,active,yesterday,2024-01-01T10:30:00Z\n")

	req := httptest.NewRequest(fiber.MethodPost, "/dashboard/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	decoded := decodeBody(t, resp)
	assert.Contains(t, decoded["message"], "Invalid date")
}

func TestUploadDashboardSemicolonDelimiter(t *testing.T) {
	app := newTestApp()
	body, contentType := multipartBody(t, "file", "checkins.csv",
		"clientId;name;status;startDate;endDate\n1;A;active;2024-01-01T10:00:00Z;2024-01-01T10:30:00Z\n")

	req := httptest.NewRequest(fiber.MethodPost, "/dashboard/upload?delimiter=%3B", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	decoded := decodeBody(t, resp)
	summaries := decoded["client_summary"].([]interface{})
	assert.Len(t, summaries, 1)
}

func TestUploadDashboardBadDelimiter(t *testing.T) {
	app := newTestApp()
	body, contentType := multipartBody(t, "file", "checkins.csv", sampleCSV)

	req := httptest.NewRequest(fiber.MethodPost, "/dashboard/upload?delimiter=abc", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadDashboardEmptyRows(t *testing.T) {
	app := newTestApp()
	body, contentType := multipartBody(t, "file", "checkins.csv",
		"clientId,name,status,startDate,endDate\n")

	req := httptest.NewRequest(fiber.MethodPost, "/dashboard/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	decoded := decodeBody(t, resp)
	assert.Len(t, decoded["client_summary"], 0)
	assert.Equal(t, float64(0), decoded["unique_active_clients"])
	// input ว่าง -> ค่าเฉลี่ยรวมเป็น null
	assert.Nil(t, decoded["average_duration_overall"])
	assert.Nil(t, decoded["average_total_checkins_overall"])
}

func TestUploadDashboardFilePartWithOtherFieldName(t *testing.T) {
	// part ที่เป็นไฟล์ใช้ชื่อ field อื่น - ต้องยังหาเจอ
	app := newTestApp()
	body, contentType := multipartBody(t, "attachment", "checkins.csv", sampleCSV)

	req := httptest.NewRequest(fiber.MethodPost, "/dashboard/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
