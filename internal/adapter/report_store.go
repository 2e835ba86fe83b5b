package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "github.com/verdict-dev/verdict/internal/model"
	"gopkg.in/yaml.v3"
)

// reportFileName is the report file written under the reports directory.
const reportFileName = "report.yaml"

const reportDirPerm = 0o755
const reportFilePerm = 0o644

// ReportStore persists and loads normalized run reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) error
	LoadReport(dir m.Path) (m.Report, error)
}

// YAMLReportStore stores reports as YAML files on the local disk.
type YAMLReportStore struct{}

// NewReportStore creates a YAML-backed ReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes the report under dir, creating the directory if needed.
func (s *YAMLReportStore) SaveReport(dir m.Path, report m.Report) error {
	if err := os.MkdirAll(string(dir), reportDirPerm); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	target := filepath.Join(string(dir), reportFileName)

	if err := os.WriteFile(target, data, reportFilePerm); err != nil {
		return fmt.Errorf("write report %s: %w", target, err)
	}

	return nil
}

// LoadReport reads the report stored under dir.
func (s *YAMLReportStore) LoadReport(dir m.Path) (m.Report, error) {
	target := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(target)
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", target, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", target, err)
	}

	return report, nil
}
