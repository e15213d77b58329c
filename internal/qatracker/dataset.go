package qatracker

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/temirov/devscripts/internal/schema"
)

const (
	datasetSchemaNameConstant      = "qa_tracker_dataset.schema.json"
	datasetDecodeErrorTemplate     = "failed to decode QA dataset: %w"
	datasetUndecodedKeysTemplate   = "%w: unknown keys %s"
	datasetValidationErrorTemplate = "QA dataset invalid: %w"
	missingPromptErrorTemplate     = "%w: scenario %q (%s) has no %s prompt"
	duplicateLanguageErrorTemplate = "%w: language %q declared twice"
	duplicateSheetErrorTemplate    = "%w: sheet %q declared twice"
	datasetInvalidMessageConstant  = "QA dataset invalid"
	undecodedKeysSeparatorConstant = ", "
)

//go:embed data/scenarios.toml
var embeddedDataset string

//go:embed data/scenarios.schema.json
var datasetSchemaDocument []byte

// ErrDatasetInvalid indicates the dataset decoded but is inconsistent.
var ErrDatasetInvalid = errors.New(datasetInvalidMessageConstant)

// Metadata describes the summary sheet of the workbook.
type Metadata struct {
	Project   string `toml:"project" json:"project"`
	Date      string `toml:"date" json:"date"`
	Objective string `toml:"objective" json:"objective"`
	Sheet     string `toml:"sheet" json:"sheet"`
}

// Language maps a prompt key to the sheet that tracks it.
type Language struct {
	Key   string `toml:"key" json:"key"`
	Sheet string `toml:"sheet" json:"sheet"`
}

// Scenario is one feature test with a prompt per language.
type Scenario struct {
	Feature  string            `toml:"feature" json:"feature"`
	Scenario string            `toml:"scenario" json:"scenario"`
	Prompts  map[string]string `toml:"prompts" json:"prompts"`
}

// Dataset is the full content rendered into the workbook.
type Dataset struct {
	Metadata  Metadata   `toml:"metadata" json:"metadata"`
	Languages []Language `toml:"languages" json:"languages"`
	Scenarios []Scenario `toml:"scenarios" json:"scenarios"`
}

var (
	datasetValidatorOnce  sync.Once
	datasetValidator      *schema.Validator
	datasetValidatorError error
)

// DefaultDataset decodes the embedded SahayakAI scenarios.
func DefaultDataset() (Dataset, error) {
	return ParseDataset(embeddedDataset)
}

// ParseDataset decodes TOML dataset text and validates it.
func ParseDataset(text string) (Dataset, error) {
	var dataset Dataset
	metadata, decodeError := toml.Decode(text, &dataset)
	if decodeError != nil {
		return Dataset{}, fmt.Errorf(datasetDecodeErrorTemplate, decodeError)
	}

	if undecodedKeys := metadata.Undecoded(); len(undecodedKeys) > 0 {
		formattedKeys := make([]string, 0, len(undecodedKeys))
		for _, undecodedKey := range undecodedKeys {
			formattedKeys = append(formattedKeys, undecodedKey.String())
		}
		return Dataset{}, fmt.Errorf(datasetUndecodedKeysTemplate, ErrDatasetInvalid, strings.Join(formattedKeys, undecodedKeysSeparatorConstant))
	}

	if validationError := dataset.Validate(); validationError != nil {
		return Dataset{}, validationError
	}
	return dataset, nil
}

// Validate checks the dataset against its schema and verifies every scenario covers every language.
func (dataset Dataset) Validate() error {
	datasetValidatorOnce.Do(func() {
		datasetValidator, datasetValidatorError = schema.NewValidator(datasetSchemaNameConstant, datasetSchemaDocument)
	})
	if datasetValidatorError != nil {
		return datasetValidatorError
	}
	if schemaError := datasetValidator.Validate(dataset); schemaError != nil {
		return fmt.Errorf(datasetValidationErrorTemplate, schemaError)
	}

	seenKeys := map[string]struct{}{}
	seenSheets := map[string]struct{}{dataset.Metadata.Sheet: {}}
	for _, language := range dataset.Languages {
		if _, duplicated := seenKeys[language.Key]; duplicated {
			return fmt.Errorf(duplicateLanguageErrorTemplate, ErrDatasetInvalid, language.Key)
		}
		seenKeys[language.Key] = struct{}{}
		if _, duplicated := seenSheets[language.Sheet]; duplicated {
			return fmt.Errorf(duplicateSheetErrorTemplate, ErrDatasetInvalid, language.Sheet)
		}
		seenSheets[language.Sheet] = struct{}{}
	}

	languageKeys := make([]string, 0, len(seenKeys))
	for languageKey := range seenKeys {
		languageKeys = append(languageKeys, languageKey)
	}
	sort.Strings(languageKeys)

	for _, scenario := range dataset.Scenarios {
		for _, languageKey := range languageKeys {
			if _, exists := scenario.Prompts[languageKey]; !exists {
				return fmt.Errorf(missingPromptErrorTemplate, ErrDatasetInvalid, scenario.Scenario, scenario.Feature, languageKey)
			}
		}
	}
	return nil
}
