// Package export builds the spreadsheet downloads offered in the admin
// console. The column names and order are a compatibility contract with
// the sheets operators already have on file; do not reorder them.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"mobintix/site-service/internal/model"
)

// requirementsSeparator joins list-valued fields into one cell.
const requirementsSeparator = "; "

// MessagesWorkbook returns an xlsx workbook of contact messages, one row
// per message with the created_at timestamp split into Date and Time.
func MessagesWorkbook(messages []model.ContactMessage) (*excelize.File, error) {
	const sheet = "Messages"
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"ID", "Date", "Time", "Name", "Email", "Phone", "Subject", "Message"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, m := range messages {
		row := []any{
			m.ID,
			m.CreatedAt.Format("2006-01-02"),
			m.CreatedAt.Format("15:04:05"),
			m.Name,
			m.Email,
			m.Phone,
			m.Subject,
			m.Message,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

// JobsWorkbook returns an xlsx workbook of job postings. Requirements are
// denormalized into a single cell joined with "; ".
func JobsWorkbook(jobs []model.Job) (*excelize.File, error) {
	const sheet = "Jobs"
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"ID", "Title", "Category", "Type", "Location", "Salary", "Description", "Requirements", "Created_At"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, j := range jobs {
		row := []any{
			j.ID,
			j.Title,
			j.Category,
			j.Type,
			j.Location,
			j.SalaryRange,
			j.Description,
			strings.Join(j.Requirements, requirementsSeparator),
			j.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}
