// Package export renders the planner's artifact outputs: the QR code of a
// composed plan, the BMI and progress charts, and the food-options table.
// Every sink takes data and returns the path of the written file.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"nutritional-planner/config"

	"github.com/sirupsen/logrus"
)

// File names under the export directory.
const (
	qrFileName       = "qr_code.png"
	bmiChartFileName = "bmi_chart.png"
	progressFileName = "bmi_progress.png"
	foodTableName    = "food_options.txt"
)

type Exporter struct {
	dir string
	log *logrus.Logger
}

// NewExporter creates the export directory if needed and returns an
// Exporter writing into it.
func NewExporter(cfg config.ExportConfig, log *logrus.Logger) (*Exporter, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &Exporter{dir: cfg.Dir, log: log}, nil
}

func (e *Exporter) path(name string) string {
	return filepath.Join(e.dir, name)
}
