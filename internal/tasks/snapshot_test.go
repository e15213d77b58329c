package tasks_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/devscripts/internal/filesystem"
	"github.com/temirov/devscripts/internal/tasks"
)

func TestParseSnapshot(testInstance *testing.T) {
	testCases := []struct {
		name               string
		text               string
		expectedTodo       []string
		expectedInProgress []string
		expectedDone       []string
	}{
		{
			name:               "empty_document",
			text:               "",
			expectedTodo:       []string{},
			expectedInProgress: []string{},
			expectedDone:       []string{},
		},
		{
			name:               "prose_without_markers",
			text:               "# Sprint board\n\nNothing planned yet.\n* [x] wrong bullet\n-[x] missing space\n- [X] uppercase marker\n",
			expectedTodo:       []string{},
			expectedInProgress: []string{},
			expectedDone:       []string{},
		},
		{
			name:               "all_states_in_order",
			text:               "- [ ] write docs\n- [/] fix bug\n- [/] fix bug2\n- [/] fix bug3\n- [x] setup repo",
			expectedTodo:       []string{"write docs"},
			expectedInProgress: []string{"fix bug", "fix bug2", "fix bug3"},
			expectedDone:       []string{"setup repo"},
		},
		{
			name:               "item_text_preserved_verbatim",
			text:               "- [x]   Ship 🚀 v1.2 (hotfix: auth, #42)  \n- [ ]\tTranslate to हिन्दी",
			expectedTodo:       []string{"Translate to हिन्दी"},
			expectedInProgress: []string{},
			expectedDone:       []string{"Ship 🚀 v1.2 (hotfix: auth, #42)  "},
		},
		{
			name:               "indented_items_flattened",
			text:               "- [/] parent\n  - [ ] child one\n\t- [x] child two",
			expectedTodo:       []string{"child one"},
			expectedInProgress: []string{"parent"},
			expectedDone:       []string{"child two"},
		},
		{
			name:               "windows_line_endings",
			text:               "- [ ] first\r\n- [x] second\r\n",
			expectedTodo:       []string{"first"},
			expectedInProgress: []string{},
			expectedDone:       []string{"second"},
		},
		{
			name:               "marker_requires_separating_whitespace",
			text:               "- [x]done\n- [ ]",
			expectedTodo:       []string{},
			expectedInProgress: []string{},
			expectedDone:       []string{},
		},
		{
			name:               "unicode_whitespace_after_marker",
			text:               "- [x]\u00a0no-break space\n- [/]\u2003em space",
			expectedTodo:       []string{},
			expectedInProgress: []string{"em space"},
			expectedDone:       []string{"no-break space"},
		},
		{
			name:               "marker_followed_by_whitespace_only",
			text:               "- [ ] \n",
			expectedTodo:       []string{""},
			expectedInProgress: []string{},
			expectedDone:       []string{},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			snapshot := tasks.ParseSnapshot(testCase.text)
			require.Equal(testInstance, testCase.expectedTodo, snapshot.Todo)
			require.Equal(testInstance, testCase.expectedInProgress, snapshot.InProgress)
			require.Equal(testInstance, testCase.expectedDone, snapshot.Done)
			require.Equal(testInstance, len(testCase.expectedTodo)+len(testCase.expectedInProgress)+len(testCase.expectedDone), snapshot.TotalCount())
		})
	}
}

func TestParseSnapshotIsIdempotent(testInstance *testing.T) {
	text := "- [ ] a\n- [/] b\n- [x] c\nnotes\n- [ ] d"
	require.Equal(testInstance, tasks.ParseSnapshot(text), tasks.ParseSnapshot(text))
}

type failingReader struct{}

func (failingReader) ReadFile(string) ([]byte, error) {
	return nil, errors.New("permission denied")
}

func TestLoadDocument(testInstance *testing.T) {
	documentPath := filepath.Join(testInstance.TempDir(), "task.md")
	fileSystem := filesystem.OSFileSystem{}
	require.NoError(testInstance, fileSystem.WriteFile(documentPath, []byte("- [/] active"), 0o644))

	document, loadError := tasks.LoadDocument(fileSystem, documentPath)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, documentPath, document.Path)
	require.Equal(testInstance, []string{"active"}, document.Snapshot().InProgress)
}

func TestLoadDocumentFailures(testInstance *testing.T) {
	testCases := []struct {
		name   string
		reader tasks.FileReader
		path   string
	}{
		{name: "missing_file", reader: filesystem.OSFileSystem{}, path: filepath.Join(testInstance.TempDir(), "absent.md")},
		{name: "read_error", reader: failingReader{}, path: "task.md"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			_, loadError := tasks.LoadDocument(testCase.reader, testCase.path)
			require.ErrorIs(testInstance, loadError, tasks.ErrDocumentUnreadable)
			require.Contains(testInstance, loadError.Error(), testCase.path)
		})
	}
}
