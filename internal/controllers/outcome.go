package controllers

// Outcome names what a submit operation did.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeCreated
	OutcomeUpdated
	OutcomeDeleted
	OutcomeRefreshed
	// OutcomeNoSelection: edit or delete with no selected row; nothing happened.
	OutcomeNoSelection
	// OutcomeNotFound: the selected id no longer exists; the store is unchanged.
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeRefreshed:
		return "refreshed"
	case OutcomeNoSelection:
		return "no selection"
	case OutcomeNotFound:
		return "not found"
	default:
		return "failed"
	}
}
