// Package fasta reads FASTA and FASTQ records from a stream.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformed reports a record that does not follow FASTA/FASTQ framing.
var ErrMalformed = errors.New("fasta: malformed record")

// Record is one sequence entry. Qual is empty for FASTA input.
type Record struct {
	Name    string
	Comment string
	Seq     string
	Qual    string
}

// Reader yields records from a FASTA or FASTQ stream; the two formats may be
// mixed in one stream, as each record declares itself with '>' or '@'.
type Reader struct {
	br   *bufio.Reader
	line int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Read returns the next record, or io.EOF when the stream is exhausted.
func (r *Reader) Read() (*Record, error) {
	marker, err := r.skipBlank()
	if err != nil {
		return nil, err
	}
	switch marker {
	case '>':
		return r.readFasta()
	case '@':
		return r.readFastq()
	default:
		return nil, fmt.Errorf("%w: line %d starts with %q, want '>' or '@'", ErrMalformed, r.line, marker)
	}
}

// skipBlank consumes empty lines and returns the first byte of the next
// record without consuming it.
func (r *Reader) skipBlank() (byte, error) {
	for {
		b, err := r.br.Peek(1)
		if err != nil {
			return 0, err
		}
		if b[0] == '\n' || b[0] == '\r' {
			if _, err := r.br.ReadByte(); err != nil {
				return 0, err
			}
			continue
		}
		return b[0], nil
	}
}

func (r *Reader) readLine() (string, error) {
	s, err := r.br.ReadString('\n')
	if s != "" {
		r.line++
	}
	s = strings.TrimRight(s, "\r\n")
	if err == io.EOF && s != "" {
		return s, nil
	}
	return s, err
}

func splitHeader(line string) (name, comment string) {
	header := line[1:]
	if i := strings.IndexAny(header, " \t"); i >= 0 {
		return header[:i], strings.TrimSpace(header[i+1:])
	}
	return header, ""
}

func (r *Reader) readFasta() (*Record, error) {
	header, err := r.readLine()
	if err != nil {
		return nil, err
	}
	rec := &Record{}
	rec.Name, rec.Comment = splitHeader(header)

	var seq strings.Builder
	for {
		b, err := r.br.Peek(1)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if b[0] == '>' || b[0] == '@' {
			break
		}
		line, err := r.readLine()
		if err != nil && err != io.EOF {
			return nil, err
		}
		seq.WriteString(strings.TrimSpace(line))
		if err == io.EOF {
			break
		}
	}
	rec.Seq = seq.String()
	if rec.Seq == "" {
		return nil, fmt.Errorf("%w: record %q has no sequence", ErrMalformed, rec.Name)
	}
	return rec, nil
}

func (r *Reader) readFastq() (*Record, error) {
	header, err := r.readLine()
	if err != nil {
		return nil, err
	}
	rec := &Record{}
	rec.Name, rec.Comment = splitHeader(header)

	var seq strings.Builder
	for {
		b, err := r.br.Peek(1)
		if err != nil {
			return nil, fmt.Errorf("%w: record %q truncated before '+'", ErrMalformed, rec.Name)
		}
		if b[0] == '+' {
			break
		}
		line, err := r.readLine()
		if err != nil && err != io.EOF {
			return nil, err
		}
		seq.WriteString(strings.TrimSpace(line))
	}
	rec.Seq = seq.String()

	// Separator line, contents ignored.
	if _, err := r.readLine(); err != nil {
		return nil, fmt.Errorf("%w: record %q truncated at separator", ErrMalformed, rec.Name)
	}

	var qual strings.Builder
	for qual.Len() < len(rec.Seq) {
		line, err := r.readLine()
		if err == io.EOF && line == "" {
			break
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		qual.WriteString(strings.TrimSpace(line))
	}
	rec.Qual = qual.String()
	if len(rec.Qual) != len(rec.Seq) {
		return nil, fmt.Errorf("%w: record %q quality length %d != sequence length %d",
			ErrMalformed, rec.Name, len(rec.Qual), len(rec.Seq))
	}
	return rec, nil
}
