// Package csv formats filtered registry sequences as spreadsheet-friendly
// CSV files.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

var header = []string{
	"id",
	"direction",
	"type",
	"agendaNumber",
	"documentNumber",
	"subject",
	"origin",
	"destination",
	"dispositionContent",
	"dispositionTargets",
	"letterDate",
	"receivedAt",
	"attachments",
}

// Exporter writes one CSV file per Export call into Dir. The rows come out
// in the order they were handed in, which is the browser's current sort.
type Exporter struct {
	Dir string
	log zerolog.Logger
}

func New(dir string, log zerolog.Logger) *Exporter {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Exporter{Dir: dir, log: log}
}

func (e *Exporter) Export(letters []*v1.Letter) (string, error) {
	path := filepath.Join(e.Dir, fmt.Sprintf("letterdesk-%s.csv", time.Now().Format("20060102-150405")))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return "", fmt.Errorf("unable to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, l := range letters {
		if err := w.Write(record(l)); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	e.log.Info().Str("path", path).Int("letters", len(letters)).Msg("exported letters")
	return path, nil
}

func record(l *v1.Letter) []string {
	targets := make([]string, 0, len(l.DispositionTargets))
	for _, t := range l.DispositionTargets {
		targets = append(targets, string(t))
	}

	attachments := make([]string, 0, len(l.Attachments))
	for _, a := range l.Attachments {
		attachments = append(attachments, a.Filename)
	}

	var letterDate string
	if !l.LetterDate.IsZero() {
		letterDate = l.LetterDate.Format("2006-01-02")
	}

	return []string{
		string(l.ID),
		string(l.Direction),
		string(l.Type),
		l.AgendaNumber,
		l.DocumentNumber,
		l.Subject,
		l.Origin,
		l.Destination,
		l.DispositionContent,
		strings.Join(targets, ";"),
		letterDate,
		l.ReceivedAt.Format(time.RFC3339),
		strings.Join(attachments, ";"),
	}
}
