package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// RunStatus records how an analytics run ended
type RunStatus string

const (
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

const runTimeLayout = "2006-01-02 15:04:05"

// AnalyticsRun is one row of the analytics_runs table. Only run metadata is
// kept; reports are always recomputed.
type AnalyticsRun struct {
	ID            string    `json:"id"`
	ChannelID     string    `json:"channelId"`
	VideoCount    int       `json:"videoCount"`
	ChannelAvgVPD float64   `json:"channelAvgVpd"`
	Status        RunStatus `json:"status"`
	Error         string    `json:"error,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewSucceededRun builds the log entry for a completed report
func NewSucceededRun(report *AnalyticsReport) *AnalyticsRun {
	return &AnalyticsRun{
		ID:            uuid.NewString(),
		ChannelID:     report.ChannelID,
		VideoCount:    report.VideoCount,
		ChannelAvgVPD: report.ChannelAvgVPD,
		Status:        RunStatusSucceeded,
		CreatedAt:     time.Now().UTC(),
	}
}

// NewFailedRun builds the log entry for a run aborted by err
func NewFailedRun(channelID string, err error) *AnalyticsRun {
	return &AnalyticsRun{
		ID:        uuid.NewString(),
		ChannelID: channelID,
		Status:    RunStatusFailed,
		Error:     err.Error(),
		CreatedAt: time.Now().UTC(),
	}
}

// CreateAnalyticsRunsTable creates the analytics_runs table if it doesn't exist
func (d *Database) CreateAnalyticsRunsTable() error {
	sql := `
	CREATE TABLE IF NOT EXISTS analytics_runs (
		id TEXT PRIMARY KEY,
		channel_id TEXT NOT NULL,
		video_count TEXT NOT NULL,
		channel_avg_vpd TEXT NOT NULL,
		status TEXT NOT NULL CHECK(status IN ('succeeded', 'failed')),
		error TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_analytics_runs_channel_id ON analytics_runs(channel_id);
	`
	return d.executeSQL(sql)
}

// RecordRun appends a run to the log
func (d *Database) RecordRun(run *AnalyticsRun) error {
	sql := `INSERT INTO analytics_runs
		(id, channel_id, video_count, channel_avg_vpd, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	err := d.executeSQL(sql,
		run.ID,
		run.ChannelID,
		strconv.Itoa(run.VideoCount),
		strconv.FormatFloat(run.ChannelAvgVPD, 'f', -1, 64),
		string(run.Status),
		run.Error,
		run.CreatedAt.UTC().Format(runTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to record run for channel %s: %w", run.ChannelID, err)
	}
	return nil
}

// RecentRuns returns the latest runs for a channel, newest first
func (d *Database) RecentRuns(channelID string, limit int) ([]AnalyticsRun, error) {
	sql := `SELECT id, channel_id, video_count, channel_avg_vpd, status, error, created_at
		FROM analytics_runs
		WHERE channel_id = ?
		ORDER BY created_at DESC LIMIT ?`

	result, err := d.db.SelectArray(sql, []interface{}{channelID, limit})
	if err != nil {
		return nil, fmt.Errorf("failed to query runs for channel %s: %w", channelID, err)
	}

	rows := uint64(result.GetNumberOfRows())
	runs := make([]AnalyticsRun, 0, rows)
	for row := uint64(0); row < rows; row++ {
		fields := make([]string, 7)
		for col := range fields {
			value, err := result.GetStringValue(row, uint64(col))
			if err != nil {
				return nil, fmt.Errorf("failed to read run row %d: %w", row, err)
			}
			fields[col] = value
		}

		run, err := parseRunRow(fields)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func parseRunRow(fields []string) (AnalyticsRun, error) {
	videoCount, err := strconv.Atoi(fields[2])
	if err != nil {
		return AnalyticsRun{}, fmt.Errorf("failed to parse video_count: %w", err)
	}
	avg, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return AnalyticsRun{}, fmt.Errorf("failed to parse channel_avg_vpd: %w", err)
	}
	createdAt, err := time.Parse(runTimeLayout, fields[6])
	if err != nil {
		return AnalyticsRun{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return AnalyticsRun{
		ID:            fields[0],
		ChannelID:     fields[1],
		VideoCount:    videoCount,
		ChannelAvgVPD: avg,
		Status:        RunStatus(fields[4]),
		Error:         fields[5],
		CreatedAt:     createdAt.UTC(),
	}, nil
}
