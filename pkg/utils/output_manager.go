package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager handles export file placement. With an empty base directory
// paths are used as given; otherwise each run gets its own subdirectory.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateRunOutputDir creates a run-ID based directory for a run's outputs
func (om *OutputManager) CreateRunOutputDir(runID string) (string, error) {
	runDir := filepath.Join(om.BaseOutputDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run output directory: %w", err)
	}

	return runDir, nil
}

// GetOutputFilePath resolves where an export file for the run should go and
// makes sure its directory exists
func (om *OutputManager) GetOutputFilePath(runID, fileName string) (string, error) {
	if om.BaseOutputDir == "" {
		if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
		return fileName, nil
	}

	runDir, err := om.CreateRunOutputDir(runID)
	if err != nil {
		return "", err
	}

	// Only the base name is kept inside the run directory
	return filepath.Join(runDir, filepath.Base(fileName)), nil
}

// GetFileType determines the file type based on extension
func (om *OutputManager) GetFileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite"
	default:
		return "unknown"
	}
}

// GetFileSize returns the size of a file in bytes
func (om *OutputManager) GetFileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}
