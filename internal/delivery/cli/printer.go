package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/config"
)

// Printer выводит результаты отчетов
type Printer struct {
	out    io.Writer
	format string
}

// NewPrinter создает Printer; format - config.ReportFormatList или config.ReportFormatTable
func NewPrinter(out io.Writer, format string) *Printer {
	return &Printer{out: out, format: format}
}

// Print выводит таблицу в настроенном формате
func (p *Printer) Print(table *domain.Table) {
	if p.format == config.ReportFormatTable {
		count := p.PrintTable(table)
		fmt.Fprintf(p.out, "total row(s): %d\n", count)
		return
	}
	p.PrintRows(table)
}

// PrintRows выводит каждую строку как [v1, v2, ...] и пустую строку после нее
func (p *Printer) PrintRows(table *domain.Table) {
	if table == nil {
		return
	}
	for _, row := range table.Rows {
		fmt.Fprintf(p.out, "[%s]\n\n", strings.Join(row, ", "))
	}
}

// PrintTable выводит заголовок перед первой строкой и строки через табуляцию.
// Возвращает количество строк. Для пустого результата заголовок не печатается.
func (p *Printer) PrintTable(table *domain.Table) int {
	if table.Len() == 0 {
		return 0
	}

	fmt.Fprintln(p.out, strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows {
		fmt.Fprintln(p.out, strings.Join(row, "\t"))
	}

	return table.Len()
}
