package experiment

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/rzaliznyak-math/random/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestCmd_RunSimulateCommand(t *testing.T) {
	// given
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "test_result.json")
	app := cli.NewApp()
	app.Commands = []*cli.Command{&SimulateCommand}
	args := utils.NewArgs("test").
		Arg(SimulateCommand.Name).
		Flag(utils.VisitorsFlag.Name, int64(4)).
		Flag(utils.RateFlag.Name, 0.5).
		Flag(utils.ExperimentsFlag.Name, 100).
		Flag(utils.RandomSeedFlag.Name, int64(297)).
		Flag(utils.WorkersFlag.Name, 1).
		Flag(utils.QuietFlag.Name, true).
		Flag(utils.OutputFlag.Name, outputFile).
		Build()

	// when
	err := app.Run(args)

	// then
	assert.NoError(t, err)
	stat, err := os.Stat(outputFile)
	require.NoError(t, err)
	assert.NotZero(t, stat.Size())
}

func TestCmd_SimulateWritesArchive(t *testing.T) {
	// given
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "test_result.json")
	archiveFile := filepath.Join(tmpDir, "test_samples.gz")
	app := cli.NewApp()
	app.Commands = []*cli.Command{&SimulateCommand}
	args := utils.NewArgs("test").
		Arg(SimulateCommand.Name).
		Flag(utils.VisitorsFlag.Name, int64(4)).
		Flag(utils.RateFlag.Name, 0.5).
		Flag(utils.ExperimentsFlag.Name, 100).
		Flag(utils.RandomSeedFlag.Name, int64(297)).
		Flag(utils.WorkersFlag.Name, 1).
		Flag(utils.QuietFlag.Name, true).
		Flag(utils.OutputFlag.Name, outputFile).
		Flag(utils.ArchiveFlag.Name, archiveFile).
		Build()

	// when
	err := app.Run(args)

	// then
	assert.NoError(t, err)
	stat, err := os.Stat(archiveFile)
	require.NoError(t, err)
	assert.NotZero(t, stat.Size())
}

func TestCmd_SimulateRegistersRun(t *testing.T) {
	// given
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "test_result.json")
	registerFile := filepath.Join(tmpDir, "test_runs.db")
	app := cli.NewApp()
	app.Commands = []*cli.Command{&SimulateCommand}
	args := utils.NewArgs("test").
		Arg(SimulateCommand.Name).
		Flag(utils.VisitorsFlag.Name, int64(4)).
		Flag(utils.RateFlag.Name, 0.5).
		Flag(utils.ExperimentsFlag.Name, 100).
		Flag(utils.IntervalFlag.Name, "x<=1").
		Flag(utils.RandomSeedFlag.Name, int64(297)).
		Flag(utils.WorkersFlag.Name, 1).
		Flag(utils.QuietFlag.Name, true).
		Flag(utils.OutputFlag.Name, outputFile).
		Flag(utils.RegisterRunFlag.Name, registerFile).
		Flag(utils.OverwriteRunIdFlag.Name, "TestRunId").
		Build()

	// when
	err := app.Run(args)

	// then
	require.NoError(t, err)
	db, err := sql.Open("sqlite3", registerFile)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM metadata WHERE runid = 'TestRunId'").Scan(&rows))
	assert.Greater(t, rows, 0)
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM estimates WHERE runid = 'TestRunId'").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestCmd_SimulateInvalidParameters(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name: "rate above one",
			args: utils.NewArgs("test").
				Arg(SimulateCommand.Name).
				Flag(utils.RateFlag.Name, 1.5).
				Build(),
			wantErr: "success rate",
		},
		{
			name: "no visitors",
			args: utils.NewArgs("test").
				Arg(SimulateCommand.Name).
				Flag(utils.VisitorsFlag.Name, int64(0)).
				Build(),
			wantErr: "number of visitors",
		},
		{
			name: "malformed interval",
			args: utils.NewArgs("test").
				Arg(SimulateCommand.Name).
				Flag(utils.IntervalFlag.Name, "banana").
				Build(),
			wantErr: "invalid interval notation",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			app := cli.NewApp()
			app.Commands = []*cli.Command{&SimulateCommand}
			err := app.Run(test.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.wantErr)
		})
	}
}
