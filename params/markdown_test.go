package params_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/episaft/params"
	"github.com/katalvlaran/episaft/saft"
)

func TestMarkdownTable_RowPerComponent(t *testing.T) {
	pure, binary := waterNaClRecords()
	s, err := params.New(pure, binary)
	require.NoError(t, err)

	table := s.MarkdownTable()
	lines := strings.Split(table, "\n")
	require.Len(t, lines, 2+3) // header + separator + one row per component

	require.Contains(t, lines[0], "|component|molarweight|")
	require.Contains(t, table, "|water_np_sigma_t|18.0152|")
	require.Contains(t, table, "|na+|22.98976|")
	require.Contains(t, table, "|cl-|35.45|")
	// Water's association block appears; the ions show zero defaults.
	require.Contains(t, table, "0.04509")
	require.Contains(t, lines[3], "|0|0|0|0|0|")
}

func TestMarkdownTable_UnnamedComponentFallback(t *testing.T) {
	s, err := params.NewPure(saft.PureRecord{
		MolarWeight: 16.043,
		Model:       saft.ModelRecord{M: 1, Sigma: 3.7, EpsilonK: 150.03},
	})
	require.NoError(t, err)
	require.Contains(t, s.MarkdownTable(), "|Component 1|")
}
