// Package errors provides the coded errors returned by every layer of rpg-battle.
//
// An *Error carries a Code, a message, an optional cause and metadata. Wrapping keeps the
// code of the innermost coded error, so a NOT_FOUND raised while building a roster member
// is still NOT_FOUND after the engine and the orchestrator add their context.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFoundf("battle %s not found", id)
//	err := errors.FailedPreconditionf("cannot move during phase %s", phase)
//
// Adding metadata:
//
//	err := errors.InvalidArgumentf("active slot %d out of range", slot).
//	    WithMeta("side", side).
//	    WithMeta("slot", slot)
//
// Wrapping errors:
//
//	if _, err := engine.NewPokemon(side, i, build); err != nil {
//	    return errors.Wrapf(err, "invalid roster member %d", i)
//	}
//
// Changing error semantics:
//
//	if err := json.Unmarshal(data, &snapshot); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal snapshot")
//	}
//
// # Error Checking
//
//	if errors.IsFailedPrecondition(err) {
//	    // the command was legal but arrived at the wrong time
//	}
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("BattleID", input.BattleID, vb)
//	errors.ValidateRange("Side", input.Side, 1, 2, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Codes Used By The Battle Engine
//
//   - InvalidArgument: malformed indices, slots or targets, bad config
//   - FailedPrecondition: wrong phase, third player, exhausted or disabled move,
//     fainted switch target, slot that does not need a switch
//   - NotFound: unknown species, move, nature, ability or item; unknown battle
//   - Internal: unrecognized move target class, storage failures
//   - DataLoss: snapshot that cannot be decoded or restored
//   - ResourceExhausted: simulation that hit its turn limit
package errors
