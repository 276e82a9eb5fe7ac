package sweep

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vflame6/credsweep/logger"
	"github.com/vflame6/credsweep/sweep/probes"
)

// LogSink is the EventSink used by the CLI: service banners and per-attempt
// lines go to the logger, findings additionally to an optional raw output
// file. In JSON mode the live success lines are suppressed so the Reporter's
// JSONL block stays the only machine-readable output.
type LogSink struct {
	json       bool
	outputFile *os.File
	fileMutex  sync.Mutex
}

// NewLogSink builds a LogSink, creating the raw output file when a name is
// given.
func NewLogSink(jsonOutput bool, outputFileName string) (*LogSink, error) {
	var outputFile *os.File
	if outputFileName != "" {
		var err error
		outputFile, err = os.Create(outputFileName)
		if err != nil {
			return nil, err
		}
	}
	return &LogSink{json: jsonOutput, outputFile: outputFile}, nil
}

func (s *LogSink) OnServiceStart(t probes.ServiceType, host string, port int) {
	logger.Infof("probing %s on %s:%d", t, host, port)
}

func (s *LogSink) OnUnsupported(t probes.ServiceType) {
	logger.Infof("skipping unsupported service type %q", t)
}

func (s *LogSink) OnAttempt(t probes.ServiceType, host string, port int, cred probes.Credential) {
	logger.Verbosef("trying %s:%s on %s:%d", cred.Username, cred.Password, host, port)
}

func (s *LogSink) OnFinding(f Finding) {
	if !s.json {
		logger.Successf("%s", f.String())
	}

	if s.outputFile != nil {
		s.fileMutex.Lock()
		_, _ = s.outputFile.WriteString(f.String() + "\n")
		s.fileMutex.Unlock()
	}
}

// Close releases the output file. Safe to call twice.
func (s *LogSink) Close() error {
	if s.outputFile == nil {
		return nil
	}
	err := s.outputFile.Close()
	s.outputFile = nil
	return err
}

// Reporter renders the final finding set once the sweep is done: JSONL (one
// finding per line) or a human-readable summary block.
type Reporter struct {
	json bool
	out  io.Writer
}

// NewReporter builds a Reporter writing to out.
func NewReporter(jsonOutput bool, out io.Writer) *Reporter {
	return &Reporter{json: jsonOutput, out: out}
}

// Report writes the summary. An empty finding set still produces output in
// text mode so a clean sweep is visible as such.
func (r *Reporter) Report(findings []Finding) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		for _, f := range findings {
			if err := enc.Encode(f); err != nil {
				return err
			}
		}
		return nil
	}

	if len(findings) == 0 {
		_, err := fmt.Fprintln(r.out, "no default credentials found")
		return err
	}

	if _, err := fmt.Fprintf(r.out, "default credentials found (%d):\n", len(findings)); err != nil {
		return err
	}
	for _, f := range findings {
		if _, err := fmt.Fprintln(r.out, f.String()); err != nil {
			return err
		}
	}
	return nil
}
