package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

func str(s string) *string { return &s }

func sampleSite() domain.Site {
	return domain.Site{
		ID:                      "s1",
		Number:                  "E-101",
		Status:                  domain.StatusSold,
		CustomerName:            str("Rahul Sharma"),
		CustomerPhone:           str("+91 98765 43210"),
		Facing:                  "North",
		Dimensions:              domain.Dimensions{North: 30, South: 30, East: 40, West: 40},
		LandAreaSqFt:            1200,
		LandCostPerSqFt:         4500,
		ConstructionAreaSqFt:    1800,
		ConstructionRatePerSqFt: 2200,
		ProfitMarginPercentage:  10,
	}
}

func TestHeadersCanonicalOrder(t *testing.T) {
	h := AllFields().Headers()
	assert.Equal(t, []string{
		"Site Number", "Status", "Facing",
		"Customer Name", "Customer Phone",
		"Area (SqFt)", "Area (Cents)",
		"North (ft)", "South (ft)", "East (ft)", "West (ft)",
		"Plot Rate/SqFt", "Plot Value", "Const Area", "Const Rate",
		"Const Value", "Base Value", "Profit Margin %", "Total Projected Value",
	}, h)
}

func TestHeadersSubset(t *testing.T) {
	f := FieldSet{Number: true, Financials: true}
	assert.Equal(t, []string{
		"Site Number",
		"Plot Rate/SqFt", "Plot Value", "Const Area", "Const Rate",
		"Const Value", "Base Value", "Profit Margin %", "Total Projected Value",
	}, f.Headers())
}

func TestRow(t *testing.T) {
	t.Run("full row matches header order and formats", func(t *testing.T) {
		row := AllFields().Row(sampleSite())
		require.Len(t, row, len(AllFields().Headers()))

		assert.Equal(t, `"E-101"`, row[0])
		assert.Equal(t, "SOLD", row[1])
		assert.Equal(t, "North", row[2])
		assert.Equal(t, `"Rahul Sharma"`, row[3])
		assert.Equal(t, `"+91 98765 43210"`, row[4])
		assert.Equal(t, "1200", row[5])
		assert.Equal(t, "2.75", row[6]) // 1200/435.6 to 2dp
		assert.Equal(t, "30", row[7])
		assert.Equal(t, "4500", row[11])
		assert.Equal(t, "5400000", row[12])
		assert.Equal(t, "9360000", row[16])
		assert.Equal(t, "10", row[17])
		assert.Equal(t, "10296000", row[18])
	})

	t.Run("missing customer fields render N/A", func(t *testing.T) {
		s := sampleSite()
		s.CustomerName = nil
		s.CustomerPhone = str("")

		row := FieldSet{Customer: true}.Row(s)
		assert.Equal(t, []string{`"N/A"`, `"N/A"`}, row)
	})
}

func TestCSV(t *testing.T) {
	f := FieldSet{Number: true, Status: true}
	out := CSV([]domain.Site{sampleSite()}, f)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Site Number,Status", lines[0])
	assert.Equal(t, `"E-101",SOLD`, lines[1])
}

func TestCSVEmptySiteList(t *testing.T) {
	out := CSV(nil, AllFields())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1) // header only
}

func TestParseFields(t *testing.T) {
	t.Run("empty list enables everything", func(t *testing.T) {
		assert.Equal(t, AllFields(), ParseFields(""))
	})

	t.Run("named groups only", func(t *testing.T) {
		f := ParseFields("number, FINANCIALS")
		assert.True(t, f.Number)
		assert.True(t, f.Financials)
		assert.False(t, f.Customer)
		assert.False(t, f.Area)
	})

	t.Run("unknown names are ignored", func(t *testing.T) {
		f := ParseFields("number,bogus")
		assert.True(t, f.Number)
		assert.False(t, f.Status)
	})
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "Emerald_Garden_Heights_Report_2026-09-01.csv", Filename("Emerald Garden Heights", "csv", now))
	assert.Equal(t, "Oakwood_Report_2026-09-01.xlsx", Filename("  Oakwood ", "xlsx", now))
}

func TestXLSX(t *testing.T) {
	file, err := XLSX([]domain.Site{sampleSite()}, FieldSet{Number: true, Area: true})
	require.NoError(t, err)

	header, err := file.GetCellValue("Sites", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Site Number", header)

	number, err := file.GetCellValue("Sites", "A2")
	require.NoError(t, err)
	assert.Equal(t, "E-101", number) // unquoted in the spreadsheet

	area, err := file.GetCellValue("Sites", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1200", area)
}
