package model

import "scaffolddemo/pkg/logging"

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's activity log,
// ensuring it doesn't exceed MaxActivityLogLines and sets the dirty flag.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// AddLogEntry formats entry and appends it to the activity log.
func AddLogEntry(m *Model, entry logging.LogEntry) {
	AddRawLineToActivityLog(m, logging.FormatEntry(entry))
}
