package named_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/namedmat/named"
)

// TestCompatible_WildcardTransparent verifies that the wildcard name agrees
// with every name, on either side, without making distinct names agree.
func TestCompatible_WildcardTransparent(t *testing.T) {
	t.Parallel()
	require.True(t, named.Compatible("col", "col"))
	require.True(t, named.Compatible(named.Wildcard, "col"))
	require.True(t, named.Compatible("col", named.Wildcard))
	require.True(t, named.Compatible(named.Wildcard, named.Wildcard))
	require.False(t, named.Compatible("col", "row"))
}

// TestCheckMM_MismatchCitesBothNames verifies the structured error carries
// both contracted names in operand order.
func TestCheckMM_MismatchCitesBothNames(t *testing.T) {
	t.Parallel()
	err := named.CheckMM([2]named.Name{"obs", "gene"}, [2]named.Name{"cell", "sample"})
	require.Error(t, err)
	require.ErrorIs(t, err, named.ErrNameMismatch)

	var mismatch *named.NameMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, named.Name("gene"), mismatch.Left)
	require.Equal(t, named.Name("cell"), mismatch.Right)
	require.Contains(t, mismatch.Error(), `"gene"`)
	require.Contains(t, mismatch.Error(), `"cell"`)
}

// TestCheckMM_OnlyContractedPairMatters verifies the outer names never
// participate in the check.
func TestCheckMM_OnlyContractedPairMatters(t *testing.T) {
	t.Parallel()
	require.NoError(t, named.CheckMM(
		[2]named.Name{"completely", "shared"},
		[2]named.Name{"shared", "different"},
	))
}

// TestCheckMV matches the matrix's column name against the vector's name.
func TestCheckMV(t *testing.T) {
	t.Parallel()
	require.NoError(t, named.CheckMV([2]named.Name{"row", "col"}, "col"))
	require.NoError(t, named.CheckMV([2]named.Name{"row", named.Wildcard}, "col"))
	require.ErrorIs(t, named.CheckMV([2]named.Name{"row", "col"}, "row"), named.ErrNameMismatch)
}

// TestCheckVM_AlwaysCompatible verifies a rank-1 left operand never conflicts.
func TestCheckVM_AlwaysCompatible(t *testing.T) {
	t.Parallel()
	require.NoError(t, named.CheckVM("anything", [2]named.Name{"row", "col"}))
	require.NoError(t, named.CheckVM("row", [2]named.Name{"row", "col"}))
}

// TestDerive_Products verifies the outer names survive contraction.
func TestDerive_Products(t *testing.T) {
	t.Parallel()
	require.Equal(t,
		[2]named.Name{"obs", "pc"},
		named.DeriveMM([2]named.Name{"obs", "gene"}, [2]named.Name{"gene", "pc"}))
	require.Equal(t, named.Name("obs"), named.DeriveMV([2]named.Name{"obs", "gene"}))
	require.Equal(t, named.Name("pc"), named.DeriveVM([2]named.Name{"gene", "pc"}))
}

// TestDeriveInverse_Involution verifies inverse naming swaps, and that a
// double swap restores the original pair.
func TestDeriveInverse_Involution(t *testing.T) {
	t.Parallel()
	in := [2]named.Name{"row", "col"}
	swapped := named.DeriveInverse(in)
	require.Equal(t, [2]named.Name{"col", "row"}, swapped)
	require.Equal(t, in, named.DeriveInverse(swapped))
}

// TestDeriveReduction covers both axes and the anonymous fallback for
// unresolvable axis indices.
func TestDeriveReduction(t *testing.T) {
	t.Parallel()
	in := [2]named.Name{"obs", "gene"}
	require.Equal(t, [2]named.Name{"gene", "gene"}, named.DeriveReduction(in, 1))
	require.Equal(t, [2]named.Name{"obs", "obs"}, named.DeriveReduction(in, 2))
	require.Equal(t, [2]named.Name{named.Wildcard, named.Wildcard}, named.DeriveReduction(in, 0))
	require.Equal(t, [2]named.Name{named.Wildcard, named.Wildcard}, named.DeriveReduction(in, 3))
}
