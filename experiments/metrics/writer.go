package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Setup describes a comparison run.
type Setup struct {
	Sessions   int           `json:"sessions"` // per strategy
	Window     int           `json:"window"`   // trailing rounds scored per session
	Decks      int           `json:"decks"`
	Target     int           `json:"target"`
	MinDepth   int           `json:"minDepth"`
	Workers    int           `json:"workers"`
	Seed       uint64        `json:"seed"`
	Strategies []string      `json:"strategies"` // in play order
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	Duration   time.Duration `json:"duration"`
}

// SeriesRecord is one point of a strategy's cumulative win rate.
type SeriesRecord struct {
	Strategy string  `json:"strategy"`
	Session  int     `json:"session"`
	Rounds   int     `json:"rounds"` // scored rounds of this session
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Draws    int     `json:"draws"`
	WinRate  float64 `json:"winRate"` // cumulative wins and draws, percent
}

type SessionRecord struct {
	Strategy     string  `json:"strategy"`
	Session      int     `json:"session"`
	RunningCount float64 `json:"runningCount"`
	TrueCount    float64 `json:"trueCount"`
	SessionMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteSeries(records []SeriesRecord) error {
	header := []string{"strategy", "session", "rounds", "wins", "losses", "draws", "win_rate"}
	return w.writeCSV("strategy_series.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			r.Strategy,
			strconv.Itoa(r.Session),
			strconv.Itoa(r.Rounds),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Draws),
			strconv.FormatFloat(r.WinRate, 'f', 4, 64),
		}
	})
}

func (w *Writer) WriteSessions(records []SessionRecord) error {
	header := []string{"strategy", "session", "rounds", "wins", "losses", "draws", "cards_dealt", "running_count", "true_count", "duration"}
	return w.writeCSV("session_records.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			r.Strategy,
			strconv.Itoa(r.Session),
			strconv.Itoa(r.Rounds),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Draws),
			strconv.Itoa(r.CardsDealt),
			strconv.FormatFloat(r.RunningCount, 'f', -1, 64),
			strconv.FormatFloat(r.TrueCount, 'f', -1, 64),
			r.Duration.String(),
		}
	})
}

func (w *Writer) writeCSV(name string, header []string, rows int, row func(i int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
