package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClosed(t *testing.T) {
	v := Render(State{Mode: ModeYear}, 0, "03", "2028", fixedNow)

	assert.Nil(t, v.Modal)
	assert.Equal(t, "03", v.MonthLabel)
	assert.Equal(t, "2028", v.YearLabel)
	assert.Equal(t, ModeYear, v.Active)
}

func TestRenderPlaceholders(t *testing.T) {
	v := Render(State{}, 0, "", "", fixedNow)

	assert.Equal(t, "MM", v.MonthLabel)
	assert.Equal(t, "YYYY", v.YearLabel)
}

func TestRenderMonthList(t *testing.T) {
	v := Render(State{Mode: ModeMonth, Open: true}, 2, "07", "2026", fixedNow)

	require.NotNil(t, v.Modal)
	assert.Equal(t, "Select Month", v.Modal.Title)
	assert.Equal(t, "✕", v.Modal.Close)
	require.Len(t, v.Modal.Rows, MonthCount)
	for i, r := range v.Modal.Rows {
		assert.Equal(t, r.Value == "07", r.Selected, "row %d", i)
		assert.Equal(t, i == 2, r.Cursor, "row %d", i)
	}
	assert.Equal(t, 6, v.Modal.SelectedRow())
}

func TestRenderYearListComparesYearField(t *testing.T) {
	// month "2027" must not leak into the year highlight
	v := Render(State{Mode: ModeYear, Open: true}, 0, "2027", "2029", fixedNow)

	require.NotNil(t, v.Modal)
	assert.Equal(t, "2029", v.Modal.Rows[v.Modal.SelectedRow()].Value)
}

func TestRenderNoHighlightForOutOfRangeValue(t *testing.T) {
	v := Render(State{Mode: ModeYear, Open: true}, 0, "", "2001", fixedNow)

	assert.Equal(t, -1, v.Modal.SelectedRow())
}

func TestRenderIsPure(t *testing.T) {
	s := State{Mode: ModeMonth, Open: true}
	assert.Equal(t, Render(s, 1, "01", "2026", fixedNow), Render(s, 1, "01", "2026", fixedNow))
}

func TestSelectedRowNilModal(t *testing.T) {
	var mv *ModalView
	assert.Equal(t, -1, mv.SelectedRow())
}
