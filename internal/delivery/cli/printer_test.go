package cli

import (
	"bytes"
	"testing"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"fname", "lname", "total"},
		Rows: [][]string{
			{"Ada", "Lovelace", "420"},
			{"John", "null", "15"},
		},
	}

	tests := []struct {
		name   string
		format string
		table  *domain.Table
		want   string
	}{
		{
			name:   "list",
			format: config.ReportFormatList,
			table:  table,
			want:   "[Ada, Lovelace, 420]\n\n[John, null, 15]\n\n",
		},
		{
			name:   "table",
			format: config.ReportFormatTable,
			table:  table,
			want:   "fname\tlname\ttotal\nAda\tLovelace\t420\nJohn\tnull\t15\ntotal row(s): 2\n",
		},
		{
			name:   "пустой list",
			format: config.ReportFormatList,
			table:  &domain.Table{Columns: []string{"vin"}},
			want:   "",
		},
		{
			name:   "пустой table без заголовка",
			format: config.ReportFormatTable,
			table:  &domain.Table{Columns: []string{"vin"}},
			want:   "total row(s): 0\n",
		},
		{
			name:   "nil",
			format: config.ReportFormatList,
			table:  nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			NewPrinter(&out, tt.format).Print(tt.table)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestPrinter_PrintTableCount(t *testing.T) {
	var out bytes.Buffer
	count := NewPrinter(&out, config.ReportFormatList).PrintTable(&domain.Table{
		Columns: []string{"a"},
		Rows:    [][]string{{"1"}, {"2"}, {"3"}},
	})
	assert.Equal(t, 3, count)
}
