package workflow

// State is the invoice workflow sub-state of the Invoices tab
type State int

const (
	StateList State = iota
	StateDraft
	StatePreview
	StateSubmitting
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateList:
		return "list"
	case StateDraft:
		return "draft"
	case StatePreview:
		return "preview"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Trigger names what moved the workflow
type Trigger string

const (
	TriggerOpenForm    Trigger = "open_form"
	TriggerEdit        Trigger = "edit"
	TriggerPreview     Trigger = "submit_for_preview"
	TriggerRequestEdit Trigger = "request_edit"
	TriggerConfirm     Trigger = "confirm"
	TriggerSucceeded   Trigger = "creation_succeeded"
	TriggerFailed      Trigger = "creation_failed"
	TriggerAcknowledge Trigger = "acknowledge"
	TriggerCancel      Trigger = "cancel"
	TriggerLeaveTab    Trigger = "leave_tab"
)

// transitions lists every legal (from, trigger) pair. Leaving the tab is
// legal from any state and is not listed.
var transitions = map[State]map[Trigger]State{
	StateList: {
		TriggerOpenForm: StateDraft,
	},
	StateDraft: {
		TriggerEdit:    StateDraft,
		TriggerPreview: StatePreview,
		TriggerCancel:  StateList,
	},
	StatePreview: {
		TriggerRequestEdit: StateDraft,
		TriggerConfirm:     StateSubmitting,
	},
	StateSubmitting: {
		TriggerSucceeded: StateSuccess,
		TriggerFailed:    StatePreview,
	},
	StateSuccess: {
		TriggerAcknowledge: StateList,
	},
}

// Next returns the state reached from `from` on trigger t
func Next(from State, t Trigger) (State, bool) {
	if t == TriggerLeaveTab {
		return StateList, true
	}
	to, ok := transitions[from][t]
	return to, ok
}

// IsValidTransition reports whether any trigger moves from one state to the other
func IsValidTransition(from, to State) bool {
	if to == StateList {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
