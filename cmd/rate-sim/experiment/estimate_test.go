package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/archive"
	"github.com/rzaliznyak-math/random/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestCmd_RunEstimateCommandOnArchive(t *testing.T) {
	// given
	tmpDir := t.TempDir()
	archiveFile := filepath.Join(tmpDir, "test_samples.gz")
	trial := utils.Must(simulation.NewTrial(4, 0.5))
	samples := simulation.SampleSet{0, 1, 2, 2, 3, 4}
	require.NoError(t, archive.WriteSampleFile(archiveFile, trial, 297, samples))
	app := cli.NewApp()
	app.Commands = []*cli.Command{&EstimateCommand}
	args := utils.NewArgs("test").
		Arg(EstimateCommand.Name).
		Flag(utils.IntervalFlag.Name, "x<=1").
		Arg(archiveFile).
		Build()

	// when
	err := app.Run(args)

	// then
	assert.NoError(t, err)
}

func TestCmd_RunEstimateCommandOnResult(t *testing.T) {
	// given: a result file of an earlier simulate run
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "test_result.json")
	simApp := cli.NewApp()
	simApp.Commands = []*cli.Command{&SimulateCommand}
	require.NoError(t, simApp.Run(utils.NewArgs("test").
		Arg(SimulateCommand.Name).
		Flag(utils.VisitorsFlag.Name, int64(4)).
		Flag(utils.RateFlag.Name, 0.5).
		Flag(utils.ExperimentsFlag.Name, 100).
		Flag(utils.RandomSeedFlag.Name, int64(297)).
		Flag(utils.WorkersFlag.Name, 1).
		Flag(utils.QuietFlag.Name, true).
		Flag(utils.OutputFlag.Name, outputFile).
		Build()))

	app := cli.NewApp()
	app.Commands = []*cli.Command{&EstimateCommand}
	args := utils.NewArgs("test").
		Arg(EstimateCommand.Name).
		Flag(utils.IntervalFlag.Name, "x>=3").
		Arg(outputFile).
		Build()

	// when
	err := app.Run(args)

	// then
	assert.NoError(t, err)
}

func TestCmd_EstimateErrorCases(t *testing.T) {
	tmpDir := t.TempDir()
	textFile := filepath.Join(tmpDir, "test_plain.txt")
	require.NoError(t, os.WriteFile(textFile, []byte("not a result"), 0644))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name: "missing argument",
			args: utils.NewArgs("test").
				Arg(EstimateCommand.Name).
				Build(),
			wantErr: "command requires exactly 1 argument",
		},
		{
			name: "file does not exist",
			args: utils.NewArgs("test").
				Arg(EstimateCommand.Name).
				Arg(filepath.Join(tmpDir, "test_missing.json")).
				Build(),
			wantErr: "could not open file",
		},
		{
			name: "neither archive nor result",
			args: utils.NewArgs("test").
				Arg(EstimateCommand.Name).
				Arg(textFile).
				Build(),
			wantErr: "cannot unmarshal result",
		},
		{
			name: "malformed interval",
			args: utils.NewArgs("test").
				Arg(EstimateCommand.Name).
				Flag(utils.IntervalFlag.Name, "banana").
				Arg(textFile).
				Build(),
			wantErr: "invalid interval notation",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			app := cli.NewApp()
			app.Commands = []*cli.Command{&EstimateCommand}
			err := app.Run(test.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.wantErr)
		})
	}
}
