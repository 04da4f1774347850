package hosts

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Header is written at the top of every merged hosts file.
const Header = "# Arquivo gerado: hosts combinados\n# Formato: IP dominio\n\n"

// WriteHosts writes the header followed by one "address domain" line per entry.
func WriteHosts(w io.Writer, entries []Entry) error {
	if _, err := io.WriteString(w, Header); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := io.WriteString(w, e.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteLines writes every line followed by a newline, with no header.
func WriteLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile creates (or truncates) path and hands a buffered writer to write.
// The first error of writing, flushing or closing is returned.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
