package journal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultPath is where the file journal writes when no path is configured.
const DefaultPath = "log.txt"

// FileJournal appends input lines to a text file, one per line, prefixed with a timestamp and
// the session id.
type FileJournal struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
	now    func() time.Time
}

func NewFileJournal(path string, logger *slog.Logger) *FileJournal {
	if path == "" {
		path = DefaultPath
	}
	return &FileJournal{path: path, logger: logger, now: time.Now}
}

func (f *FileJournal) Path() string {
	return f.path
}

// Record appends a line to the journal file.
func (f *FileJournal) Record(ctx context.Context, sessionID uuid.UUID, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.write(fmt.Sprintf("%s %s %s", f.now().UTC().Format(time.RFC3339), sessionID, line))
}

// Start writes a session header so separate runs are easy to tell apart.
func (f *FileJournal) Start(ctx context.Context, sessionID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.write(fmt.Sprintf("\n%s %s session started", f.now().UTC().Format(time.RFC3339), sessionID))
}

func (f *FileJournal) write(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() {
		_ = file.Close() // Ignore error in defer
	}()

	if _, err := file.WriteString(text + "\n"); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}
	return nil
}
