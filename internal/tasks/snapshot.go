package tasks

import (
	"strings"
	"unicode"
)

const (
	stateTodoStringConstant       = "todo"
	stateInProgressStringConstant = "in_progress"
	stateDoneStringConstant       = "done"
	itemPrefixConstant            = "- ["
	markerClosingConstant         = "]"
	todoMarkerConstant            = ' '
	inProgressMarkerConstant      = '/'
	doneMarkerConstant            = 'x'
	lineSeparatorConstant         = "\n"
	carriageReturnConstant        = "\r"
	leadingIndentationCutset      = " \t"
)

// State identifies the lifecycle stage of a checklist item.
type State string

// Supported checklist states.
const (
	StateTodo       State = State(stateTodoStringConstant)
	StateInProgress State = State(stateInProgressStringConstant)
	StateDone       State = State(stateDoneStringConstant)
)

// Snapshot holds checklist items grouped by state, each in document order.
type Snapshot struct {
	Todo       []string
	InProgress []string
	Done       []string
}

// TotalCount reports the number of recognized items across all states.
func (snapshot Snapshot) TotalCount() int {
	return len(snapshot.Todo) + len(snapshot.InProgress) + len(snapshot.Done)
}

// ParseSnapshot extracts checklist items from markdown text.
//
// A recognized line is "- [ ]", "- [/]" or "- [x]" optionally preceded by spaces or tabs and
// followed by at least one Unicode whitespace character. The remainder of the line after that
// whitespace run is the item text. Indentation carries no nesting meaning and every other
// line is ignored.
func ParseSnapshot(text string) Snapshot {
	snapshot := Snapshot{
		Todo:       []string{},
		InProgress: []string{},
		Done:       []string{},
	}

	for _, line := range strings.Split(text, lineSeparatorConstant) {
		state, item, recognized := parseLine(strings.TrimSuffix(line, carriageReturnConstant))
		if !recognized {
			continue
		}
		switch state {
		case StateTodo:
			snapshot.Todo = append(snapshot.Todo, item)
		case StateInProgress:
			snapshot.InProgress = append(snapshot.InProgress, item)
		case StateDone:
			snapshot.Done = append(snapshot.Done, item)
		}
	}

	return snapshot
}

func parseLine(line string) (State, string, bool) {
	candidate := strings.TrimLeft(line, leadingIndentationCutset)
	if !strings.HasPrefix(candidate, itemPrefixConstant) {
		return "", "", false
	}
	candidate = candidate[len(itemPrefixConstant):]
	if len(candidate) < 2 || candidate[1:2] != markerClosingConstant {
		return "", "", false
	}

	var state State
	switch candidate[0] {
	case todoMarkerConstant:
		state = StateTodo
	case inProgressMarkerConstant:
		state = StateInProgress
	case doneMarkerConstant:
		state = StateDone
	default:
		return "", "", false
	}

	remainder := candidate[2:]
	item := strings.TrimLeftFunc(remainder, unicode.IsSpace)
	if len(item) == len(remainder) {
		return "", "", false
	}
	return state, item, true
}
