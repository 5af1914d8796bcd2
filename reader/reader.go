// Package reader parses the two-column integer input.
//
// Input is lines of two whitespace-separated base-10 integers. Parsing stops
// quietly at the first token that is not an integer or at end of file; a
// trailing unpaired integer is dropped.
package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/botirk38/pairscore/types"
)

// ReadFile opens path and reads it with Read. If the file cannot be opened
// the result is empty and the error wraps ErrOpen.
func ReadFile(path string) (types.NumberLists, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.NumberLists{}, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()

	return Read(f)
}

// Read makes two passes over r: the first counts lines to size the columns,
// the second rewinds and parses pairs.
func Read(r io.ReadSeeker) (types.NumberLists, error) {
	lines, err := CountLines(r)
	if err != nil {
		return types.NumberLists{}, err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return types.NumberLists{}, fmt.Errorf("%w: rewind: %v", ErrRead, err)
	}

	lists, err := Parse(r, lines)
	if err != nil {
		return types.NumberLists{}, err
	}
	lists.Lines = lines
	return lists, nil
}

// CountLines counts newline-delimited lines of any length. A final line
// without a trailing newline still counts.
func CountLines(r io.Reader) (int, error) {
	br := bufio.NewReader(r)

	count := 0
	partial := false
	for {
		chunk, err := br.ReadSlice('\n')
		switch {
		case err == nil:
			count++
			partial = false
		case errors.Is(err, bufio.ErrBufferFull):
			partial = true
		case errors.Is(err, io.EOF):
			if partial || len(chunk) > 0 {
				count++
			}
			return count, nil
		default:
			return 0, fmt.Errorf("%w: count lines: %v", ErrRead, err)
		}
	}
}

// Parse scans integer pairs from r in encounter order. sizeHint presizes the
// columns and may be zero.
func Parse(r io.Reader, sizeHint int) (types.NumberLists, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	lists := types.NumberLists{
		Left:  make([]int, 0, sizeHint),
		Right: make([]int, 0, sizeHint),
	}

	for {
		a, ok := nextInt(scanner)
		if !ok {
			break
		}
		b, ok := nextInt(scanner)
		if !ok {
			break
		}
		lists.Left = append(lists.Left, a)
		lists.Right = append(lists.Right, b)
	}
	// An oversized token is malformed input and ends it like any other.
	if err := scanner.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return types.NumberLists{}, fmt.Errorf("%w: %v", ErrRead, err)
	}

	lists.Count = len(lists.Left)
	return lists, nil
}

func nextInt(scanner *bufio.Scanner) (int, bool) {
	if !scanner.Scan() {
		return 0, false
	}
	n, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, false
	}
	return n, true
}
