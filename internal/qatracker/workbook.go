package qatracker

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheetNameConstant         = "Sheet1"
	featureHeaderConstant            = "Feature"
	scenarioHeaderConstant           = "Test Scenario"
	promptHeaderTemplateConstant     = "Input Prompt (%s)"
	statusHeaderConstant             = "Status (Pass/Fail)"
	observationsHeaderConstant       = "Observations / Bugs"
	qualityHeaderConstant            = "Output Quality (1-5)"
	headerFontColorConstant          = "FFFFFF"
	headerFillColorConstant          = "1E3A8A"
	borderColorConstant              = "000000"
	fillTypePatternConstant          = "pattern"
	fillPatternSolidConstant         = 1
	borderStyleThinConstant          = 1
	alignmentCenterConstant          = "center"
	alignmentTopConstant             = "top"
	headerRowNumberConstant          = 1
	firstDataRowNumberConstant       = 2
	metadataProjectLabelConstant     = "Project"
	metadataDateLabelConstant        = "Date"
	metadataObjectiveLabelConstant   = "Objective"
	metadataLabelColumnConstant      = "A"
	metadataValueColumnConstant      = "B"
	sheetCreationErrorTemplate       = "failed to create sheet %s: %w"
	sheetPopulationErrorTemplate     = "failed to populate sheet %s: %w"
	styleCreationErrorTemplate       = "failed to create workbook style: %w"
	defaultSheetRemovalErrorTemplate = "failed to remove default sheet: %w"
	workbookEncodingErrorTemplate    = "failed to encode workbook: %w"
	workbookMissingMessageConstant   = "workbook has no tracker sheets"
)

var borderSides = []string{"left", "right", "top", "bottom"}

var columnWidths = []struct {
	column string
	width  float64
}{
	{column: "A", width: 25},
	{column: "B", width: 30},
	{column: "C", width: 60},
	{column: "D", width: 15},
	{column: "E", width: 40},
	{column: "F", width: 15},
}

// ErrWorkbookEmpty indicates the dataset declared no language sheets.
var ErrWorkbookEmpty = errors.New(workbookMissingMessageConstant)

// SheetHeaders returns the header row of a language sheet.
func SheetHeaders(sheetName string) []string {
	return []string{
		featureHeaderConstant,
		scenarioHeaderConstant,
		fmt.Sprintf(promptHeaderTemplateConstant, sheetName),
		statusHeaderConstant,
		observationsHeaderConstant,
		qualityHeaderConstant,
	}
}

type workbookStyles struct {
	header int
	data   int
}

// BuildWorkbook renders the dataset into an in-memory workbook. The caller closes it.
func BuildWorkbook(dataset Dataset) (*excelize.File, error) {
	if len(dataset.Languages) == 0 {
		return nil, ErrWorkbookEmpty
	}

	workbook := excelize.NewFile()
	styles, stylesError := createStyles(workbook)
	if stylesError != nil {
		_ = workbook.Close()
		return nil, stylesError
	}

	for _, language := range dataset.Languages {
		if sheetError := populateLanguageSheet(workbook, styles, language, dataset.Scenarios); sheetError != nil {
			_ = workbook.Close()
			return nil, sheetError
		}
	}

	if metadataError := populateMetadataSheet(workbook, dataset.Metadata); metadataError != nil {
		_ = workbook.Close()
		return nil, metadataError
	}

	if !dataset.declaresSheet(defaultSheetNameConstant) {
		if deleteError := workbook.DeleteSheet(defaultSheetNameConstant); deleteError != nil {
			_ = workbook.Close()
			return nil, fmt.Errorf(defaultSheetRemovalErrorTemplate, deleteError)
		}
	}

	firstSheetIndex, indexError := workbook.GetSheetIndex(dataset.Languages[0].Sheet)
	if indexError == nil && firstSheetIndex >= 0 {
		workbook.SetActiveSheet(firstSheetIndex)
	}

	return workbook, nil
}

// EncodeWorkbook renders the dataset and returns the xlsx bytes.
func EncodeWorkbook(dataset Dataset) ([]byte, error) {
	workbook, buildError := BuildWorkbook(dataset)
	if buildError != nil {
		return nil, buildError
	}
	defer workbook.Close()

	buffer, encodingError := workbook.WriteToBuffer()
	if encodingError != nil {
		return nil, fmt.Errorf(workbookEncodingErrorTemplate, encodingError)
	}
	return buffer.Bytes(), nil
}

func createStyles(workbook *excelize.File) (workbookStyles, error) {
	borders := make([]excelize.Border, 0, len(borderSides))
	for _, side := range borderSides {
		borders = append(borders, excelize.Border{Type: side, Color: borderColorConstant, Style: borderStyleThinConstant})
	}

	headerStyle, headerError := workbook.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFontColorConstant},
		Fill:      excelize.Fill{Type: fillTypePatternConstant, Pattern: fillPatternSolidConstant, Color: []string{headerFillColorConstant}},
		Alignment: &excelize.Alignment{Horizontal: alignmentCenterConstant, Vertical: alignmentCenterConstant},
		Border:    borders,
	})
	if headerError != nil {
		return workbookStyles{}, fmt.Errorf(styleCreationErrorTemplate, headerError)
	}

	dataStyle, dataError := workbook.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: alignmentTopConstant},
		Border:    borders,
	})
	if dataError != nil {
		return workbookStyles{}, fmt.Errorf(styleCreationErrorTemplate, dataError)
	}

	return workbookStyles{header: headerStyle, data: dataStyle}, nil
}

func populateLanguageSheet(workbook *excelize.File, styles workbookStyles, language Language, scenarios []Scenario) error {
	if _, creationError := workbook.NewSheet(language.Sheet); creationError != nil {
		return fmt.Errorf(sheetCreationErrorTemplate, language.Sheet, creationError)
	}

	headers := SheetHeaders(language.Sheet)
	headerRow := make([]interface{}, 0, len(headers))
	for _, header := range headers {
		headerRow = append(headerRow, header)
	}
	if rowError := setRow(workbook, language.Sheet, headerRowNumberConstant, headerRow); rowError != nil {
		return fmt.Errorf(sheetPopulationErrorTemplate, language.Sheet, rowError)
	}
	if styleError := styleRows(workbook, language.Sheet, headerRowNumberConstant, headerRowNumberConstant, len(headers), styles.header); styleError != nil {
		return fmt.Errorf(sheetPopulationErrorTemplate, language.Sheet, styleError)
	}

	for index, scenario := range scenarios {
		dataRow := []interface{}{scenario.Feature, scenario.Scenario, scenario.Prompts[language.Key], "", "", ""}
		if rowError := setRow(workbook, language.Sheet, firstDataRowNumberConstant+index, dataRow); rowError != nil {
			return fmt.Errorf(sheetPopulationErrorTemplate, language.Sheet, rowError)
		}
	}
	if len(scenarios) > 0 {
		lastRowNumber := firstDataRowNumberConstant + len(scenarios) - 1
		if styleError := styleRows(workbook, language.Sheet, firstDataRowNumberConstant, lastRowNumber, len(headers), styles.data); styleError != nil {
			return fmt.Errorf(sheetPopulationErrorTemplate, language.Sheet, styleError)
		}
	}

	for _, columnWidth := range columnWidths {
		if widthError := workbook.SetColWidth(language.Sheet, columnWidth.column, columnWidth.column, columnWidth.width); widthError != nil {
			return fmt.Errorf(sheetPopulationErrorTemplate, language.Sheet, widthError)
		}
	}
	return nil
}

func populateMetadataSheet(workbook *excelize.File, metadata Metadata) error {
	if _, creationError := workbook.NewSheet(metadata.Sheet); creationError != nil {
		return fmt.Errorf(sheetCreationErrorTemplate, metadata.Sheet, creationError)
	}

	entries := [][2]string{
		{metadataProjectLabelConstant, metadata.Project},
		{metadataDateLabelConstant, metadata.Date},
		{metadataObjectiveLabelConstant, metadata.Objective},
	}
	for index, entry := range entries {
		rowNumber := index + 1
		if valueError := workbook.SetCellValue(metadata.Sheet, fmt.Sprintf("%s%d", metadataLabelColumnConstant, rowNumber), entry[0]); valueError != nil {
			return fmt.Errorf(sheetPopulationErrorTemplate, metadata.Sheet, valueError)
		}
		if valueError := workbook.SetCellValue(metadata.Sheet, fmt.Sprintf("%s%d", metadataValueColumnConstant, rowNumber), entry[1]); valueError != nil {
			return fmt.Errorf(sheetPopulationErrorTemplate, metadata.Sheet, valueError)
		}
	}
	return nil
}

func setRow(workbook *excelize.File, sheetName string, rowNumber int, values []interface{}) error {
	firstCell, cellError := excelize.CoordinatesToCellName(1, rowNumber)
	if cellError != nil {
		return cellError
	}
	return workbook.SetSheetRow(sheetName, firstCell, &values)
}

func styleRows(workbook *excelize.File, sheetName string, firstRowNumber int, lastRowNumber int, columnCount int, styleID int) error {
	topLeftCell, topLeftError := excelize.CoordinatesToCellName(1, firstRowNumber)
	if topLeftError != nil {
		return topLeftError
	}
	bottomRightCell, bottomRightError := excelize.CoordinatesToCellName(columnCount, lastRowNumber)
	if bottomRightError != nil {
		return bottomRightError
	}
	return workbook.SetCellStyle(sheetName, topLeftCell, bottomRightCell, styleID)
}

func (dataset Dataset) declaresSheet(sheetName string) bool {
	if dataset.Metadata.Sheet == sheetName {
		return true
	}
	for _, language := range dataset.Languages {
		if language.Sheet == sheetName {
			return true
		}
	}
	return false
}
