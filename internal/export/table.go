package export

import (
	"fmt"
	"os"

	"nutritional-planner/internal/catalog"

	"github.com/olekukonko/tablewriter"
)

// FoodOptionsTable renders the static meal catalog as a text table, one
// column per category in the fixed order, and returns the file path.
func (e *Exporter) FoodOptionsTable() (string, error) {
	path := e.path(foodTableName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create food options file: %w", err)
	}
	defer f.Close()

	rows := 0
	for _, category := range catalog.CategoryOrder {
		if n := len(catalog.Categories[category]); n > rows {
			rows = n
		}
	}

	table := tablewriter.NewWriter(f)
	table.SetHeader(catalog.CategoryOrder)
	for i := 0; i < rows; i++ {
		row := make([]string, len(catalog.CategoryOrder))
		for j, category := range catalog.CategoryOrder {
			items := catalog.Categories[category]
			if i < len(items) {
				row[j] = items[i]
			}
		}
		table.Append(row)
	}
	table.Render()

	return path, nil
}
