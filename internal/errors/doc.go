// Package errors provides coded errors for the rpg-realtime simulation.
//
// Errors carry a code, a message and optional metadata. Wrapping keeps the code of
// the innermost coded error so callers can branch on the cause:
//
//	if err := repo.Save(ctx, snapshots); err != nil {
//	    return errors.Wrap(err, "failed to save snapshots")
//	}
//
//	if errors.IsNotFound(err) {
//	    // entity was despawned
//	}
//
// Metadata travels with the error and is read back with GetMeta:
//
//	err := errors.NotFound("entity not found").
//	    WithMeta("entity_id", id).
//	    WithMeta("frame", frame)
//
// # Validation
//
// Config and input types validate with the builder and return its error as is:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Grid == nil {
//	    vb.RequiredField("Grid")
//	}
//	errors.ValidateRange("Width", cfg.Width, 1, maxSize, vb)
//	return vb.Build()
//
// Constructors return the error wrapped with context:
//
//	if err := cfg.Validate(); err != nil {
//	    return nil, errors.Wrap(err, "invalid config")
//	}
//
// # gRPC
//
// ToGRPCError maps codes onto gRPC status codes for the serve command's
// interceptors. Uncoded errors become Internal.
//
// # Layers
//
// Repositories return NotFound for missing keys and Unavailable when the backing
// store cannot be reached. Orchestrators validate their inputs, returning
// InvalidArgument, and wrap everything else with the entity and frame involved.
// The tick loop collects per-entity failures with Join instead of stopping on the
// first one.
package errors
