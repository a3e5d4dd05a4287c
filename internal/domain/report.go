package domain

// Table - результат запроса в виде плоских строк.
// Все значения уже приведены к тексту, порядок строк - порядок выдачи БД.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len возвращает количество строк
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
