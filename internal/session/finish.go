package session

import (
	"fmt"
	"io"
	"os"

	"shelp/internal/config"
	"shelp/internal/extract"
)

// Finish applies the recorded disposition once the mainloop has exited: it
// writes the main response to the edit file when one was configured for Ask
// mode, and echoes the response to stdout when requested. The echo happens on
// every exit path, including Discard.
func (m *Model) Finish(stdout io.Writer) error {
	if m.cfg.Task == config.TaskAsk && m.cfg.EditFile != "" {
		switch m.disposition {
		case DispositionWriteRendered:
			if err := writeFile(m.cfg.EditFile, extract.Rendered(m.main.Text())); err != nil {
				return err
			}
		case DispositionWriteRaw:
			if err := writeFile(m.cfg.EditFile, m.main.Text()); err != nil {
				return err
			}
		}
	}

	if m.cfg.WriteStdout {
		fmt.Fprintln(stdout, m.main.Text())
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
