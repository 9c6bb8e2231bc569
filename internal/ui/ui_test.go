package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"remindpro/internal/task"
	"remindpro/internal/views"
)

func TestRenderCellOneMarkerPerCategory(t *testing.T) {
	m := Model{styles: newStyles(false)}

	cell := views.Cell{
		Day:        15,
		Categories: []task.Category{task.CategoryBills, task.CategoryTaxes, task.CategoryPersonal},
	}
	assert.Equal(t, 3, strings.Count(m.renderCell(cell), "•"))

	one := views.Cell{Day: 3, Categories: []task.Category{task.CategoryBills}}
	assert.Equal(t, 1, strings.Count(m.renderCell(one), "•"))
}

func TestRenderCellFixedWidth(t *testing.T) {
	m := Model{styles: newStyles(false)}

	assert.Equal(t, "      ", m.renderCell(views.Cell{}))
	assert.Equal(t, " 15   ", m.renderCell(views.Cell{Day: 15}))
}
