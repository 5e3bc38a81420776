// Package errors provides coded errors for the DND Manager services.
//
// Errors carry a Code, a user-facing message and optional metadata. Wrapping
// keeps the code of the innermost coded error unless WrapWithCode overrides it.
//
//	err := errors.NotFoundf("character %s not found", id).
//	    WithMeta("character_id", id)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to get character")
//	}
//
// A stored record that no longer decodes is reported with CodeDataLoss:
//
//	return nil, errors.CorruptRecord(err, "character", id)
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// ToGRPCError maps a coded error onto a status. Metadata travels as a
// google.protobuf.Struct detail and FromGRPCError restores it on the client.
package errors
