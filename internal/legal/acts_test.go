package legal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelevantMatchesCriminalQuery(t *testing.T) {
	got := Relevant("The police filed an FIR and I need bail")
	require.NotEmpty(t, got)
	codes := make([]string, 0, len(got))
	for _, a := range got {
		codes = append(codes, a.Code)
	}
	require.Contains(t, codes, "CrPC")
	require.Contains(t, codes, "IPC")
}

func TestRelevantOrdersByMatchCount(t *testing.T) {
	got := Relevant("landlord refuses deposit, breach of rent agreement")
	require.NotEmpty(t, got)
	require.Equal(t, "Contract Act", got[0].Code)
}

func TestRelevantEmptyForUnrelatedQuery(t *testing.T) {
	require.Empty(t, Relevant("what is the weather today"))
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	require.NotEmpty(t, a)
	a[0].Name = "mutated"
	require.NotEqual(t, "mutated", All()[0].Name)
}
