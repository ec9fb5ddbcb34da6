// Package errors provides structured errors for the wuxing game service.
//
// Every error carries a Code that maps onto a gRPC status code. Rejected game
// commands also carry a Reason, a stable snake_case string clients can switch
// on without parsing messages.
//
// # Command Failures
//
// Two classes of command failure exist:
//
//	// not legal in the current state
//	return errors.Validation(errors.ReasonNotInBattle, "no battle in progress")
//
//	// legal, but the player cannot pay for it
//	return errors.Resourcef(errors.ReasonInsufficientCurrency,
//	    "reversal needs %d yin, have %d", deficit, have)
//
// Selections that point outside the battle use InvalidSelection, which maps
// to InvalidArgument instead of FailedPrecondition.
//
// Checking the class:
//
//	if errors.IsResourceFailure(err) {
//	    // offer replenish
//	}
//	if errors.HasReason(err, errors.ReasonBattleInProgress) {
//	    // finish the battle first
//	}
//
// # Wrapping
//
// Wrap keeps the code and reason of the wrapped error so a repository or
// orchestrator can add context without hiding the cause:
//
//	if err := o.repo.Update(ctx, input); err != nil {
//	    return nil, errors.Wrapf(err, "failed to save player %s", id)
//	}
//
// # gRPC Integration
//
// ToGRPCError attaches the reason and metadata as an ErrorInfo detail in the
// "wuxing" domain. FromGRPCError restores both on the client side.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("player_id", input.PlayerID, vb)
//	errors.ValidateNonNegative("inventory.metal", inv[wuxing.ElementMetal], vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
