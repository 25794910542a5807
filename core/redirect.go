package core

import (
	"fmt"
	"io"
	"os"
)

// Redirections holds the files to install on a command's standard
// streams, extracted from its argument vector.
type Redirections struct {
	// Stdout is the "> FILE" target, opened truncated.
	Stdout *os.File
	// Stdin is the "< FILE" source, opened read-only.
	Stdin *os.File
}

// Close releases both descriptors. Safe on a nil receiver.
func (r *Redirections) Close() error {
	if r == nil {
		return nil
	}
	var lastErr error
	if r.Stdout != nil {
		if err := r.Stdout.Close(); err != nil {
			lastErr = err
		}
	}
	if r.Stdin != nil {
		if err := r.Stdin.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// ParseRedirections scans argv once, left to right, for the two-token
// sequences "> FILE" and "< FILE". It returns the argument vector with
// those tokens removed along with the opened files. Only the first
// occurrence of each operator is honored; later occurrences are left in
// place as ordinary arguments. An operator with no following filename
// or a file that cannot be opened fails the command being constructed,
// nothing else.
func ParseRedirections(argv []string) ([]string, *Redirections, error) {
	redir := &Redirections{}
	cleaned := make([]string, 0, len(argv))

	for i := 0; i < len(argv); i++ {
		switch tok := argv[i]; {
		case tok == ">" && redir.Stdout == nil:
			if i+1 >= len(argv) {
				redir.Close()
				return nil, nil, fmt.Errorf("syntax error: no target after %q", tok)
			}
			fd, err := os.OpenFile(argv[i+1], os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
			if err != nil {
				redir.Close()
				return nil, nil, err
			}
			redir.Stdout = fd
			i++ // skip the filename

		case tok == "<" && redir.Stdin == nil:
			if i+1 >= len(argv) {
				redir.Close()
				return nil, nil, fmt.Errorf("syntax error: no source after %q", tok)
			}
			fd, err := os.Open(argv[i+1])
			if err != nil {
				redir.Close()
				return nil, nil, err
			}
			redir.Stdin = fd
			i++ // skip the filename

		default:
			cleaned = append(cleaned, tok)
		}
	}

	return cleaned, redir, nil
}

// apply overrides the default streams with any opened redirections.
func (r *Redirections) apply(stdin io.Reader, stdout io.Writer) (io.Reader, io.Writer) {
	if r.Stdin != nil {
		stdin = r.Stdin
	}
	if r.Stdout != nil {
		stdout = r.Stdout
	}
	return stdin, stdout
}
