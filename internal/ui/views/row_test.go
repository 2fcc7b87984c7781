package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multipick/internal/domain"
)

func testRecord(t *testing.T, raw string) *domain.Record {
	t.Helper()
	records, err := domain.ParseRecords([]byte("[" + raw + "]"))
	require.NoError(t, err)
	return records[0]
}

func TestRenderRowCheckboxFollowsProjection(t *testing.T) {
	r := NewRowRenderer(NewStyles("238"), "name", VisualCheckbox)
	rec := testRecord(t, `{"id":1,"name":"alpha"}`)

	line := r.RenderRow(rec, false, 80)
	assert.Contains(t, line, "[ ]")

	rec.Selected = true
	line = r.RenderRow(rec, false, 80)
	assert.Contains(t, line, "[x]")
	assert.Contains(t, line, "alpha")
}

func TestRenderRowCursorMarker(t *testing.T) {
	r := NewRowRenderer(NewStyles("238"), "name", VisualHighlight)
	rec := testRecord(t, `{"id":1,"name":"alpha"}`)

	assert.Contains(t, r.RenderRow(rec, true, 80), ">")
	assert.True(t, strings.HasPrefix(r.RenderRow(rec, false, 80), "  "))
}

func TestRenderRowFallsBackToRawJSON(t *testing.T) {
	r := NewRowRenderer(NewStyles("238"), "name", VisualHighlight)
	rec := testRecord(t, `{"id":42}`)

	assert.Contains(t, r.RenderRow(rec, false, 80), `{"id":42}`)
}

func TestRenderRowTruncatesLongLabels(t *testing.T) {
	r := NewRowRenderer(NewStyles("238"), "name", VisualHighlight)
	rec := testRecord(t, `{"id":1,"name":"`+strings.Repeat("x", 100)+`"}`)

	line := r.RenderRow(rec, false, 20)
	assert.Contains(t, line, "…")
}

func TestRenderCount(t *testing.T) {
	assert.Equal(t, "2 selected of 5", RenderCount(2, 5, 5))
	assert.Equal(t, "2 selected, 3/5 shown", RenderCount(2, 3, 5))
}
