package pom

import (
	"strings"

	"github.com/tebeka/selenium"
)

// Table wraps a <table> with a header row of <th> cells and body rows under
// <tbody>. Every call reads the live table.
type Table struct {
	*Element
}

// NewTable returns a Table. An empty name defaults to "Table".
func NewTable(s *Session, selector, name string) *Table {
	return &Table{newTyped(s, selector, name, "Table")}
}

// Headers returns the header texts in column order.
func (t *Table) Headers() ([]string, error) {
	t.log().Debug("Getting headers")
	ths, err := t.findIn("th")
	if err != nil {
		return nil, err
	}
	return t.texts(ths)
}

// Rows returns the body rows.
func (t *Table) Rows() ([]selenium.WebElement, error) {
	return t.findIn("tbody tr")
}

// RowCount returns the number of body rows.
func (t *Table) RowCount() (int, error) {
	rows, err := t.Rows()
	return len(rows), err
}

// Row returns the body row at index i.
func (t *Table) Row(i int) (selenium.WebElement, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	if err := checkIndex(t.name, "row", i, len(rows)); err != nil {
		return nil, err
	}
	return rows[i], nil
}

func (t *Table) cells(row selenium.WebElement) ([]selenium.WebElement, error) {
	tds, err := row.FindElements(selenium.ByCSSSelector, "td")
	if err != nil {
		return nil, t.wrap("read cells of", err)
	}
	return tds, nil
}

func (t *Table) cell(r, c int) (selenium.WebElement, error) {
	row, err := t.Row(r)
	if err != nil {
		return nil, err
	}
	tds, err := t.cells(row)
	if err != nil {
		return nil, err
	}
	if err := checkIndex(t.name, "column", c, len(tds)); err != nil {
		return nil, err
	}
	return tds[c], nil
}

// CellValue returns the text of the cell at row r, column c.
func (t *Table) CellValue(r, c int) (string, error) {
	t.log().Debugf("Getting cell value at row %d, col %d", r, c)
	td, err := t.cell(r, c)
	if err != nil {
		return "", err
	}
	return t.text(td)
}

// ColumnValues returns the texts of column c for every row long enough to
// have one.
func (t *Table) ColumnValues(c int) ([]string, error) {
	t.log().Debugf("Getting all values from column %d", c)
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	values := []string{}
	for _, row := range rows {
		tds, err := t.cells(row)
		if err != nil {
			return nil, err
		}
		if c < 0 || c >= len(tds) {
			continue
		}
		v, err := t.text(tds[c])
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// AllData returns one record per body row keyed by header text. Extra
// headers or extra cells are ignored.
func (t *Table) AllData() ([]map[string]string, error) {
	t.log().Debug("Getting all data")
	headers, err := t.Headers()
	if err != nil {
		return nil, err
	}
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	data := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		tds, err := t.cells(row)
		if err != nil {
			return nil, err
		}
		record := make(map[string]string)
		for i := 0; i < len(headers) && i < len(tds); i++ {
			v, err := t.text(tds[i])
			if err != nil {
				return nil, err
			}
			record[headers[i]] = v
		}
		data = append(data, record)
	}
	return data, nil
}

// FindRowByValue returns the index of the first row whose column c holds
// value, or -1.
func (t *Table) FindRowByValue(c int, value string) (int, error) {
	t.log().Debugf("Finding row with value %q in column %d", value, c)
	rows, err := t.Rows()
	if err != nil {
		return -1, err
	}
	for i, row := range rows {
		tds, err := t.cells(row)
		if err != nil {
			return -1, err
		}
		if c < 0 || c >= len(tds) {
			continue
		}
		v, err := t.text(tds[c])
		if err != nil {
			return -1, err
		}
		if v == value {
			return i, nil
		}
	}
	return -1, nil
}

// ClickCell clicks the cell at row r, column c.
func (t *Table) ClickCell(r, c int) error {
	t.log().WithField("action", "click").Infof("Clicking cell at row %d, col %d", r, c)
	td, err := t.cell(r, c)
	if err != nil {
		return err
	}
	return t.wrap("click cell of", td.Click())
}

func (t *Table) text(we selenium.WebElement) (string, error) {
	s, err := we.Text()
	if err != nil {
		return "", t.wrap("read cell of", err)
	}
	return strings.TrimSpace(s), nil
}

func (t *Table) texts(wes []selenium.WebElement) ([]string, error) {
	out := make([]string, 0, len(wes))
	for _, we := range wes {
		s, err := t.text(we)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
