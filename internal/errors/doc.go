// Package errors provides the structured error type shared by the
// pathfinding engine, the navigation orchestrator, and the gRPC handlers.
//
// An Error carries a Code, a caller-facing message, an optional cause and
// free-form metadata:
//
//	err := errors.NotFoundf("level %s not found", levelID).
//	    WithMeta("level_id", levelID)
//
// Wrap keeps the code of an existing *Error and defaults to Internal for
// anything else:
//
//	if err := repo.Save(ctx, level); err != nil {
//	    return errors.Wrap(err, "failed to save level")
//	}
//
// Handlers return ToGRPCError(err); clients call FromGRPCError to get the
// code and metadata back. Metadata travels as a structpb.Struct status
// detail, so values must be JSON-like (strings, numbers, bools, slices,
// maps).
//
// Config validation uses the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Width <= 0 {
//	    vb.InvalidField("Width", "must be positive")
//	}
//	return vb.Build()
package errors
