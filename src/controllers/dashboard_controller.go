package controllers

import (
	"Backend-LevelOneGym/src/models"
	"Backend-LevelOneGym/src/services/dashboard"
	"Backend-LevelOneGym/src/utils"
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// UploadDashboard godoc
// @Summary      Upload a gym check-in CSV and get dashboard statistics
// @Description  Upload a CSV with columns clientId, status, startDate, endDate, name
// @Tags         dashboard
// @Accept       multipart/form-data
// @Produce      json
// @Param        file       formData  file    true   "CSV file with check-in records"
// @Param        delimiter  query     string  false  "Column delimiter (default ,)"
// @Success      200  {object}  models.DashboardSummary
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /dashboard/upload [post]
func UploadDashboard(c *fiber.Ctx) error {
	// multipart boundary มาจาก Content-Type header - ไม่มีก็ไปต่อไม่ได้
	if c.Get(fiber.HeaderContentType) == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Content-Type header is missing")
	}

	var params models.DashboardParams
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters: "+err.Error())
	}
	if err := validate.Struct(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid delimiter: must be a single character")
	}

	fileHeader, err := findCSVFile(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "No CSV file found in the request")
	}

	uploadID := uuid.NewString()
	log.Printf("📥 [%s] ได้รับไฟล์ CSV: %s (%d bytes)", uploadID, fileHeader.Filename, fileHeader.Size)
	c.Set("X-Upload-Id", uploadID)

	src, err := fileHeader.Open()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Internal server error: "+err.Error())
	}
	defer src.Close()

	table, err := utils.ParseCSVTable(src, params.Comma())
	if err != nil {
		log.Printf("❌ [%s] อ่าน CSV ไม่สำเร็จ: %v", uploadID, err)
		return utils.HandleError(c, fiber.StatusBadRequest, "Error parsing CSV file. Please check the file format.")
	}

	summary, err := dashboard.Aggregate(table)
	if err != nil {
		var missingErr *dashboard.MissingColumnsError
		var dateErr *dashboard.DateParseError
		switch {
		case errors.As(err, &missingErr):
			return utils.HandleError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Missing required columns: %v", missingErr.Columns))
		case errors.As(err, &dateErr):
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid date in CSV file: "+dateErr.Error())
		default:
			log.Printf("❌ [%s] คำนวณสถิติไม่สำเร็จ: %v", uploadID, err)
			return utils.HandleError(c, fiber.StatusInternalServerError, "Internal server error: "+err.Error())
		}
	}

	log.Printf("✅ [%s] ประมวลผลสำเร็จ: %d rows, %d clients", uploadID, len(table.Rows), len(summary.ClientSummary))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"client_summary":                 summary.ClientSummary,
		"checkins_by_day_time":           summary.CheckinsByDayTime,
		"unique_active_clients":          summary.UniqueActiveClients,
		"unique_inactive_clients":        summary.UniqueInactiveClients,
		"average_duration_overall":       summary.AverageDurationOverall,
		"average_total_checkins_overall": summary.AverageTotalCheckinsOverall,
		"message":                        "CSV file processed successfully",
	})
}

// findCSVFile หาไฟล์แรกใน multipart form - field "file" ก่อน ไม่เจอค่อยไล่ field อื่น
func findCSVFile(c *fiber.Ctx) (*multipart.FileHeader, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		return fileHeader, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	for _, headers := range form.File {
		if len(headers) > 0 {
			return headers[0], nil
		}
	}
	return nil, errors.New("no file part in multipart form")
}
