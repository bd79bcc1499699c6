package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-tax-tracker/internal/config"
	"property-tax-tracker/internal/models"
	"property-tax-tracker/internal/store"
)

var seedRecords = []models.RecordInput{
	{Address: "123 Main St", AssessmentAmount: 1200.50, PaymentAmount: 300, PaymentDate: "2024-01-01"},
	{Address: "45 Oak Ave", AssessmentAmount: 98765.4321},
}

func seedDatabase(t *testing.T, inputs []models.RecordInput) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.db")

	s, err := store.Open(path, config.DriverPureGo)
	require.NoError(t, err)
	defer s.Close()

	for _, in := range inputs {
		_, err := s.Create(context.Background(), in)
		require.NoError(t, err)
	}
	return path
}

func runListCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	clearEnv(t)

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"list"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)

	t.Run("records", func(t *testing.T) {
		path := seedDatabase(t, seedRecords)
		out, err := runListCommand(t, "--db", path, "--driver", config.DriverPureGo)
		require.NoError(t, err)
		g.Assert(t, "list_plain", []byte(out))
	})

	t.Run("empty", func(t *testing.T) {
		path := seedDatabase(t, nil)
		out, err := runListCommand(t, "--db", path)
		require.NoError(t, err)
		g.Assert(t, "list_empty", []byte(out))
	})
}

func TestListCommand_RejectsArgs(t *testing.T) {
	_, err := runListCommand(t, "--db", seedDatabase(t, nil), "extra")
	require.Error(t, err)
}

func TestListCommand_UnopenableDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "records.db")
	_, err := runListCommand(t, "--db", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
