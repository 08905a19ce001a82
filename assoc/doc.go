// Package assoc builds the association (hydrogen-bonding) parameter block
// consumed by the parameter builder.
//
// What:
//
//   - Record describes one component's association behavior: volume κ_AB,
//     energy ε_AB/k (K), and site counts N_A, N_B, N_C.
//   - BinaryRecord overrides the cross-association parameters of one pair.
//   - New combines per-component records into pairwise κ and ε matrices
//     using the CR-1 combining rule with a σ-ratio correction on κ.
//
// Combining rule (defaults, pair i,j):
//
//	ε_AB,ij = (ε_AB,i + ε_AB,j) / 2
//	κ_AB,ij = sqrt(κ_AB,i·κ_AB,j) · ( sqrt(σ_i·σ_j) / (σ_i+σ_j)/2 )³
//
// Binary overrides replace the combined value for both (i,j) and (j,i).
//
// Errors:
//
//   - ErrSigmaLength: sigma slice length differs from the record count.
//   - ErrPairIndex: a binary override references an out-of-range component.
package assoc
