package scaffold

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"text/template"

	"github.com/temirov/devscripts/internal/filesystem"
)

const (
	sourceNotFoundMessageConstant          = "source file not found"
	sourceNotFoundErrorTemplate            = "%w: %s"
	sourceInspectionErrorTemplate          = "failed to inspect %s: %w"
	targetInspectionErrorTemplate          = "failed to inspect %s: %w"
	directoryCreationErrorTemplate         = "failed to create test directory %s: %w"
	templateRenderErrorTemplate            = "failed to render test scaffold: %w"
	testFileWriteErrorTemplate             = "failed to write test scaffold %s: %w"
	fileSystemNotConfiguredMessageConstant = "scaffold filesystem not configured"
	testTemplateNameConstant               = "vitest"
	testDirectoryPermissionsConstant       = fs.FileMode(0o755)
	testFilePermissionsConstant            = fs.FileMode(0o644)
)

//go:embed templates/vitest.test.ts.tmpl
var vitestTemplateSource string

var vitestTemplate = template.Must(template.New(testTemplateNameConstant).Parse(vitestTemplateSource))

// ErrSourceNotFound indicates the source file does not exist.
var ErrSourceNotFound = errors.New(sourceNotFoundMessageConstant)

// ErrFileSystemNotConfigured indicates the scaffolder was constructed without a filesystem.
var ErrFileSystemNotConfigured = errors.New(fileSystemNotConfiguredMessageConstant)

// Result describes the outcome of a scaffold request.
type Result struct {
	SourcePath string
	TestPath   string
	ExportName string
	Skipped    bool
}

type templateData struct {
	ExportName     string
	SourceFileName string
}

// Scaffolder writes vitest stubs next to source files.
type Scaffolder struct {
	fileSystem    filesystem.FileSystem
	configuration CommandConfiguration
}

// NewScaffolder constructs a Scaffolder.
func NewScaffolder(fileSystem filesystem.FileSystem, configuration CommandConfiguration) (*Scaffolder, error) {
	if fileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	return &Scaffolder{fileSystem: fileSystem, configuration: configuration.Sanitize()}, nil
}

// TestPathFor returns the scaffold location for sourcePath.
func (scaffolder *Scaffolder) TestPathFor(sourcePath string) string {
	testDirectory := filepath.Join(filepath.Dir(sourcePath), scaffolder.configuration.TestDirectory)
	return filepath.Join(testDirectory, FileStem(sourcePath)+scaffolder.configuration.TestSuffix)
}

// Scaffold creates the test stub unless one already exists.
func (scaffolder *Scaffolder) Scaffold(sourcePath string) (Result, error) {
	if _, statError := scaffolder.fileSystem.Stat(sourcePath); statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return Result{}, fmt.Errorf(sourceNotFoundErrorTemplate, ErrSourceNotFound, sourcePath)
		}
		return Result{}, fmt.Errorf(sourceInspectionErrorTemplate, sourcePath, statError)
	}

	result := Result{
		SourcePath: sourcePath,
		TestPath:   scaffolder.TestPathFor(sourcePath),
		ExportName: ExportName(FileStem(sourcePath)),
	}

	_, targetStatError := scaffolder.fileSystem.Stat(result.TestPath)
	if targetStatError == nil {
		result.Skipped = true
		return result, nil
	}
	if !errors.Is(targetStatError, fs.ErrNotExist) {
		return Result{}, fmt.Errorf(targetInspectionErrorTemplate, result.TestPath, targetStatError)
	}

	testDirectory := filepath.Dir(result.TestPath)
	if mkdirError := scaffolder.fileSystem.MkdirAll(testDirectory, testDirectoryPermissionsConstant); mkdirError != nil {
		return Result{}, fmt.Errorf(directoryCreationErrorTemplate, testDirectory, mkdirError)
	}

	content, renderError := RenderTestContent(filepath.Base(sourcePath), result.ExportName)
	if renderError != nil {
		return Result{}, renderError
	}

	if writeError := scaffolder.fileSystem.WriteFile(result.TestPath, content, testFilePermissionsConstant); writeError != nil {
		return Result{}, fmt.Errorf(testFileWriteErrorTemplate, result.TestPath, writeError)
	}

	return result, nil
}

// RenderTestContent renders the vitest stub importing exportName from sourceFileName.
func RenderTestContent(sourceFileName string, exportName string) ([]byte, error) {
	var buffer bytes.Buffer
	if executeError := vitestTemplate.Execute(&buffer, templateData{ExportName: exportName, SourceFileName: sourceFileName}); executeError != nil {
		return nil, fmt.Errorf(templateRenderErrorTemplate, executeError)
	}
	return buffer.Bytes(), nil
}
