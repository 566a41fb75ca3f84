// Package preference models a total preorder over all worlds of a signature
// as an ordered partition of the world space into ranks.
//
// What:
//
//   - WorldPreference is an immutable value: rank 0 holds the most preferred
//     worlds, every world in [0, 2^n) lives in exactly one rank.
//   - Mode selects the contiguity rule: CPO forbids empty ranks, TPO allows
//     them as deliberately skipped preference levels.
//   - Every mutation (MoveWorld, Compact) returns a new value; the receiver is
//     never touched, so holding on to older values is always safe.
//
// Normal form:
//
//   - The last rank is never empty. Trailing empty ranks have no observable
//     meaning in any encoding and are trimmed by every constructor.
//
// Errors:
//
//   - ErrMalformedInput: a syntactic or structural decode failure.
//   - ErrInvariantViolation: well-formed data that is not a valid partition.
//   - ErrNoData: refinement of ErrMalformedInput for inputs with no decodable rank.
//
// All failures are *Error values; match them with errors.Is on the kind.
//
// Complexity:
//
//   - Initial, New, FromRankIndices, MoveWorld, Validate: O(2^n).
//   - RankOf, Prefers, RankCount: O(1).
package preference
