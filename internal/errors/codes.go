package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Reason is a stable, machine readable cause for a rejected game command.
// Clients switch on it; messages are for humans.
type Reason string

// Validation reasons: the command is not legal in the current state or
// refers to something that does not exist.
const (
	ReasonBattleInProgress    Reason = "battle_in_progress"
	ReasonNotInBattle         Reason = "not_in_battle"
	ReasonBattleNotPending    Reason = "battle_not_pending"
	ReasonBattleNotWon        Reason = "battle_not_won"
	ReasonReversalUnavailable Reason = "reversal_unavailable"
	ReasonNoElementSelected   Reason = "no_element_selected"
	ReasonInvalidIndex        Reason = "invalid_index"
	ReasonAlreadyRevealed     Reason = "already_revealed"
	ReasonInvalidSelection    Reason = "invalid_selection"
	ReasonRoundAlreadyWon     Reason = "round_already_won"
	ReasonUnknownElement      Reason = "unknown_element"
	ReasonUnknownCurrency     Reason = "unknown_currency"
	ReasonUnknownBranch       Reason = "unknown_branch"
)

// Resource reasons: the player cannot afford the command.
const (
	ReasonInsufficientElements Reason = "insufficient_elements"
	ReasonInsufficientElement  Reason = "insufficient_element"
	ReasonInsufficientCurrency Reason = "insufficient_currency"
)

// IsResource reports whether the reason belongs to the resource class
func (r Reason) IsResource() bool {
	switch r {
	case ReasonInsufficientElements, ReasonInsufficientElement, ReasonInsufficientCurrency:
		return true
	default:
		return false
	}
}
