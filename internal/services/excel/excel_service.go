package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/tripnest/hotel-services-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// Service builds Excel workbooks from the hotel inventory
type Service struct{}

// NewExcelService creates a new Excel service instance
func NewExcelService() *Service {
	return &Service{}
}

// ExportHotels renders the given hotels into a single-sheet workbook.
// The caller streams the returned file; nothing is written to disk.
func (s *Service) ExportHotels(hotels []models.Hotel) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Hotels"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	columns := []string{
		"id", "hotel_beds_id", "name", "email", "city", "country_code",
		"destination_code", "address", "postal_code", "category",
		"latitude", "longitude", "status", "last_updated",
	}

	for i, col := range columns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(sheetName, cell, col)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", columnToLetter(len(columns))+"1", headerStyle)
	}

	inactiveStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9D9D9"}, // Gray
			Pattern: 1,
		},
	})
	pendingStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFC000"}, // Orange
			Pattern: 1,
		},
	})

	for i, col := range columns {
		colLetter := columnToLetter(i + 1)
		width := 15.0

		switch col {
		case "name", "email":
			width = 30.0
		case "address":
			width = 40.0
		case "last_updated":
			width = 22.0
		}

		f.SetColWidth(sheetName, colLetter, colLetter, width)
	}

	for j, hotel := range hotels {
		rowNum := j + 2

		hotelBedsID := ""
		if hotel.HotelBedsID != nil {
			hotelBedsID = fmt.Sprintf("%d", *hotel.HotelBedsID)
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), hotel.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), hotelBedsID)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), hotel.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), hotel.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), hotel.City)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), hotel.CountryCode)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), hotel.DestinationCode)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowNum), hotel.Address)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", rowNum), hotel.PostalCode)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", rowNum), hotel.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", rowNum), hotel.Latitude)
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", rowNum), hotel.Longitude)
		f.SetCellValue(sheetName, fmt.Sprintf("M%d", rowNum), hotel.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("N%d", rowNum), hotel.LastUpdated.Format(time.RFC3339))

		switch strings.ToLower(hotel.Status) {
		case models.HotelStatusInactive:
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", columnToLetter(len(columns)), rowNum), inactiveStyle)
		case models.HotelStatusPending:
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", columnToLetter(len(columns)), rowNum), pendingStyle)
		}
	}

	if len(hotels) == 0 {
		f.SetCellValue(sheetName, "A2", "no hotels found")
	}

	return f, nil
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
