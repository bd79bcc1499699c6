package components

import (
	"context"
	"strconv"

	"property-tax-tracker/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// RecordSource supplies the rows shown by a RecordTable.
type RecordSource interface {
	ListAll(ctx context.Context) ([]models.PropertyTaxRecord, error)
}

// RecordColumns are the table headings, in display order.
var RecordColumns = []string{"ID", "Address", "Assessment", "Payment", "Date"}

var recordColumnWidths = []float32{60, 280, 130, 130, 120}

// RecordTable shows every stored record and tracks the selected row.
type RecordTable struct {
	source   RecordSource
	table    *widget.Table
	rows     []models.PropertyTaxRecord
	selected int // -1 when nothing is selected

	onChanged func(rows int)
}

// NewRecordTable creates an empty table bound to source. Nothing is shown
// until the first Refresh.
func NewRecordTable(source RecordSource) *RecordTable {
	rt := &RecordTable{
		source:   source,
		selected: -1,
	}
	rt.createTable()
	return rt
}

func (rt *RecordTable) createTable() {
	rt.table = widget.NewTableWithHeaders(
		func() (int, int) { return len(rt.rows), len(RecordColumns) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			cell.(*widget.Label).SetText(rt.CellText(id.Row, id.Col))
		},
	)
	rt.table.ShowHeaderColumn = false
	rt.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	rt.table.UpdateHeader = func(id widget.TableCellID, header fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(RecordColumns) {
			header.(*widget.Label).SetText(RecordColumns[id.Col])
		}
	}

	for col, width := range recordColumnWidths {
		rt.table.SetColumnWidth(col, width)
	}

	rt.table.OnSelected = func(id widget.TableCellID) {
		if id.Row >= 0 && id.Row < len(rt.rows) {
			rt.selected = id.Row
		}
	}
	rt.table.OnUnselected = func(widget.TableCellID) {
		rt.selected = -1
	}
}

// Refresh replaces every row with a fresh snapshot from the source and
// clears the selection. On error the current rows are kept.
func (rt *RecordTable) Refresh(ctx context.Context) error {
	rows, err := rt.source.ListAll(ctx)
	if err != nil {
		return err
	}

	rt.rows = rows
	rt.table.UnselectAll()
	rt.selected = -1
	rt.table.Refresh()

	if rt.onChanged != nil {
		rt.onChanged(len(rows))
	}
	return nil
}

// SelectedID returns the id of the selected row, if any.
func (rt *RecordTable) SelectedID() (int64, bool) {
	if rt.selected < 0 || rt.selected >= len(rt.rows) {
		return 0, false
	}
	return rt.rows[rt.selected].ID, true
}

// SelectRow selects the row at index, as a click on any of its cells would.
func (rt *RecordTable) SelectRow(row int) {
	if row < 0 || row >= len(rt.rows) {
		return
	}
	rt.selected = row
	rt.table.Select(widget.TableCellID{Row: row, Col: 0})
}

// Rows returns a copy of the displayed rows.
func (rt *RecordTable) Rows() []models.PropertyTaxRecord {
	return append([]models.PropertyTaxRecord(nil), rt.rows...)
}

// CellText renders one cell the way the table displays it.
func (rt *RecordTable) CellText(row, col int) string {
	if row < 0 || row >= len(rt.rows) {
		return ""
	}
	rec := rt.rows[row]
	switch col {
	case 0:
		return strconv.FormatInt(rec.ID, 10)
	case 1:
		return rec.Address
	case 2:
		return models.FormatAmount(rec.AssessmentAmount)
	case 3:
		return models.FormatAmount(rec.PaymentAmount)
	case 4:
		return rec.PaymentDate
	default:
		return ""
	}
}

// SetOnChanged registers a callback run after each successful refresh.
func (rt *RecordTable) SetOnChanged(fn func(rows int)) {
	rt.onChanged = fn
}

// Widget returns the underlying table widget
func (rt *RecordTable) Widget() *widget.Table {
	return rt.table
}
