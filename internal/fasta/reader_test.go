package fasta

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func readAll(t *testing.T, input string) []*Record {
	t.Helper()
	r := NewReader(strings.NewReader(input))
	var recs []*Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		recs = append(recs, rec)
	}
}

func TestReadFasta(t *testing.T) {
	recs := readAll(t, ">read1 first read\nACGT\n>read2\nAC\nGT\nTT\n")
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Name != "read1" || recs[0].Comment != "first read" || recs[0].Seq != "ACGT" {
		t.Errorf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Name != "read2" || recs[1].Seq != "ACGTTT" {
		t.Errorf("multi-line sequence not joined: %+v", recs[1])
	}
}

func TestReadFastaCRLFAndNoTrailingNewline(t *testing.T) {
	recs := readAll(t, ">r\r\nACGT\r\nTT")
	if len(recs) != 1 || recs[0].Seq != "ACGTTT" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestReadFastq(t *testing.T) {
	recs := readAll(t, "@read1 desc\nACGT\n+\nIIII\n@read2\nAC\n+read2\n!!\n")
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Seq != "ACGT" || recs[0].Qual != "IIII" {
		t.Errorf("unexpected fastq record: %+v", recs[0])
	}
	if recs[1].Qual != "!!" {
		t.Errorf("unexpected second record: %+v", recs[1])
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	r := NewReader(strings.NewReader("not a sequence file\n"))
	if _, err := r.Read(); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestReadQualityLengthMismatch(t *testing.T) {
	r := NewReader(strings.NewReader("@r\nACGT\n+\nII\n"))
	if _, err := r.Read(); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}
