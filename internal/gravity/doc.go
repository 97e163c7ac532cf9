// Package gravity provides the Newtonian force model for the 2D N-body
// simulation.
//
// The central type is [Field], which carries the gravitational constant
// and the softening length as explicit configuration:
//
//   - [Field.Force]: pairwise force between two point masses
//   - [Field.Accelerations]: net acceleration on every body (O(N²) pairs)
//   - [Field.Energy]: total mechanical energy for drift monitoring
//
// All functions are pure and deterministic: given identical inputs the
// pair sum is evaluated in a fixed order (i ascending, then j ascending),
// so repeated calls are bit-reproducible.
//
// # Singularities
//
// Two bodies closer than the softening length cannot be represented as
// point masses; [Field.Force] returns a [SeparationError] rather than a
// softened or zero force. Check for it with errors.Is(err, ErrSingular).
package gravity
