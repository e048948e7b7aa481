package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type Base struct {
	ID uint `excel:"ID"`
}

type rosterRow struct {
	Base
	Name     string  `excel:"Name"`
	Nickname *string `excel:"Nickname"`
	Internal string  `excel:"-"`
	Hour     int
}

func TestExportToExcel(t *testing.T) {
	nick := "Ace"
	rows := []*rosterRow{
		{Base: Base{ID: 1}, Name: "Caitlin", Nickname: &nick, Internal: "x", Hour: 9},
		nil,
		{Base: Base{ID: 2}, Name: "Nick", Hour: 14},
	}

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, ExportToExcel(f, "Roster", rows))

	got, err := f.GetRows("Roster")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"ID", "Name", "Nickname", "Hour"},
		{"1", "Caitlin", "Ace", "9"},
		{"2", "Nick", "", "14"},
	}, got)
}

func TestExportToExcelEmptySliceWritesHeader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, ExportToExcel(f, "Roster", []rosterRow{}))

	got, err := f.GetRows("Roster")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"ID", "Name", "Nickname", "Hour"}}, got)
}

func TestExportToExcelRejectsNonSlice(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.Error(t, ExportToExcel(f, "", rosterRow{}))
	require.Error(t, ExportToExcel(f, "", []int{1}))
}
