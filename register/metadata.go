package register

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rzaliznyak-math/random/simulation/recorder"
	"github.com/rzaliznyak-math/random/utils"
)

const (
	// SQL statement for creating the run metadata table
	createMetadataSQL = `
CREATE TABLE IF NOT EXISTS metadata (
	runid TEXT,
	key TEXT NOT NULL,
	value TEXT,
	PRIMARY KEY (runid, key)
);
`

	// SQL statement for inserting a metadata fact of a run
	insertMetadataSQL = `
INSERT or REPLACE INTO metadata (
	runid, key, value
) VALUES (
	?, ?, ?
)
`

	// SQL statement for creating the interval estimates table
	createEstimatesSQL = `
CREATE TABLE IF NOT EXISTS estimates (
	runid TEXT,
	interval TEXT,
	count INTEGER,
	empirical FLOAT,
	analytical FLOAT,
	exact FLOAT,
	PRIMARY KEY (runid, interval)
);
`

	// SQL statement for inserting an interval estimate of a run
	insertEstimateSQL = `
INSERT or REPLACE INTO estimates (
	runid, interval, count, empirical, analytical, exact
) VALUES (
	?, ?, ?, ?, ?, ?
)
`
)

// RunMetadata records the facts of one simulation run.
type RunMetadata struct {
	Meta map[string]string
	Ps   *utils.Printers

	runId string
}

// MakeRunMetadata merges the environment info with the config info of the
// run and prepares the printers writing them. The sqlite3 sink is skipped
// when the connection string is empty.
func MakeRunMetadata(connection string, id *RunIdentity, fetchEnv func() (map[string]string, error)) (*RunMetadata, error) {
	rm := &RunMetadata{
		Meta: map[string]string{},
		Ps:   utils.NewPrinters(),
	}

	envInfo, err := fetchEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch environment info; %v", err)
	}
	for k, v := range envInfo {
		rm.Meta[k] = v
	}

	cfgInfo, err := id.fetchConfigInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch config info; %v", err)
	}
	for k, v := range cfgInfo {
		rm.Meta[k] = v
	}

	rm.runId, err = id.GetId()
	if err != nil {
		return nil, fmt.Errorf("failed to derive run id; %v", err)
	}

	rm.Ps.AddPrinterToConsole(id.Cfg.Quiet, rm.text)
	rm.Ps.AddPrinterToSqlite3(rm.sqlite3(connection))
	return rm, nil
}

// Print outputs the metadata to all attached sinks.
func (rm *RunMetadata) Print() {
	rm.Ps.Print()
}

// Close releases the attached sinks.
func (rm *RunMetadata) Close() {
	rm.Ps.Close()
}

// RecordEstimates attaches a printer writing one row per estimated
// interval of the run.
func (rm *RunMetadata) RecordEstimates(conn string, estimates []recorder.EstimateJSON) {
	rm.Ps.AddPrinterToSqlite3(rm.estimates(conn, estimates))
}

// text renders the metadata as sorted key value lines.
func (rm *RunMetadata) text() string {
	keys := make([]string, 0, len(rm.Meta))
	for k := range rm.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Registered run %s:\n", rm.runId))
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", k, rm.Meta[k]))
	}
	return sb.String()
}

// sqlite3 prepares the statements feeding the run metadata into a sqlite3 db.
// The return values match the arguments of Printers.AddPrinterToSqlite3.
func (rm *RunMetadata) sqlite3(conn string) (string, string, string, func() [][]any) {
	return conn, createMetadataSQL, insertMetadataSQL,
		func() [][]any {
			values := [][]any{}
			for k, v := range rm.Meta {
				values = append(values, []any{rm.runId, k, v})
			}
			return values
		}
}

// estimates prepares the statements feeding the interval estimates of the
// run into a sqlite3 db.
func (rm *RunMetadata) estimates(conn string, estimates []recorder.EstimateJSON) (string, string, string, func() [][]any) {
	return conn, createEstimatesSQL, insertEstimateSQL,
		func() [][]any {
			values := [][]any{}
			for _, e := range estimates {
				var analytical any
				if e.Analytical != nil {
					analytical = *e.Analytical
				}
				values = append(values, []any{rm.runId, e.Interval, e.Count, e.Empirical, analytical, e.Exact})
			}
			return values
		}
}

// FetchUnixInfo collects facts about the machine the run executes on.
func FetchUnixInfo() (map[string]string, error) {
	cmd := command{executor: utils.NewShell()}

	kernel, err := cmd.getKernel()
	if err != nil {
		return nil, fmt.Errorf("failed to get kernel information; %w", err)
	}
	machine, err := cmd.getMachine()
	if err != nil {
		return nil, fmt.Errorf("failed to get machine information; %w", err)
	}
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get hostname; %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory; %w", err)
	}
	timezone, _ := time.Now().Zone()

	return map[string]string{
		"Kernel":     kernel,
		"Machine":    machine,
		"Hostname":   hostname,
		"User":       os.Getenv("USER"),
		"WorkingDir": workDir,
		"Timezone":   timezone,
		"Processors": strconv.Itoa(runtime.NumCPU()),
		"GoVersion":  runtime.Version(),
		"GoOs":       runtime.GOOS,
		"GoArch":     runtime.GOARCH,
	}, nil
}

type command struct {
	executor utils.ShellExecutor
}

func (c *command) getKernel() (string, error) {
	output, err := c.executor.Command("sh", "-c", "uname -sr")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

func (c *command) getMachine() (string, error) {
	output, err := c.executor.Command("sh", "-c", "uname -m")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
