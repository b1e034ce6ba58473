package utils

import (
	"Backend-LevelOneGym/src/models"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ParseCSVTable อ่านข้อความ CSV เป็นตาราง - แถวแรกเป็น header
func ParseCSVTable(r io.Reader, comma rune) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("csv file has no header row")
	}
	if err != nil {
		return nil, err
	}

	// ตัด UTF-8 BOM ที่มักติดมากับไฟล์จาก Excel
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([]models.Row, 0, len(records))
	for _, record := range records {
		row := make(models.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = models.InferValue(record[i])
			}
		}
		rows = append(rows, row)
	}

	return &models.Table{Columns: header, Rows: rows}, nil
}
