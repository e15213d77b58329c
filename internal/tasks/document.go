package tasks

import (
	"errors"
	"fmt"

	"github.com/temirov/devscripts/internal/filesystem"
)

const (
	documentUnreadableMessageConstant       = "task document unreadable"
	documentUnreadableErrorTemplateConstant = "%w: %s: %w"
)

// ErrDocumentUnreadable indicates the task document could not be read.
var ErrDocumentUnreadable = errors.New(documentUnreadableMessageConstant)

// FileReader reads whole files.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// Document is the raw text of a task file read once per invocation.
type Document struct {
	Path string
	Text string
}

// LoadDocument reads the task document at path.
func LoadDocument(reader FileReader, path string) (Document, error) {
	if reader == nil {
		reader = filesystem.OSFileSystem{}
	}
	contents, readError := reader.ReadFile(path)
	if readError != nil {
		return Document{}, fmt.Errorf(documentUnreadableErrorTemplateConstant, ErrDocumentUnreadable, path, readError)
	}
	return Document{Path: path, Text: string(contents)}, nil
}

// Snapshot parses the document text.
func (document Document) Snapshot() Snapshot {
	return ParseSnapshot(document.Text)
}
