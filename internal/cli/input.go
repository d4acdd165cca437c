package cli

import (
	"bufio"
	"context"
	"io"
	"strconv"
)

// tokenReader yields whitespace-separated tokens from a reader. Scanning
// runs in its own goroutine so a pending read never blocks cancellation.
type tokenReader struct {
	tokens chan string
	done   chan struct{}
	err    error
}

func newTokenReader(r io.Reader) *tokenReader {
	t := &tokenReader{
		tokens: make(chan string),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(t.tokens)
		sc := bufio.NewScanner(r)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			select {
			case t.tokens <- sc.Text():
			case <-t.done:
				return
			}
		}
		t.err = sc.Err()
	}()
	return t
}

// next returns the next token, io.EOF once input is exhausted, or the
// context error if ctx ends first.
func (t *tokenReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case tok, ok := <-t.tokens:
		if !ok {
			if t.err != nil {
				return "", t.err
			}
			return "", io.EOF
		}
		return tok, nil
	}
}

// nextInt reads a token and parses it as an integer. ok is false when the
// token is not a number; err is set only when no token could be read.
func (t *tokenReader) nextInt(ctx context.Context) (n int, ok bool, err error) {
	tok, err := t.next(ctx)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(tok)
	return n, convErr == nil, nil
}

// close stops the scanning goroutine once it next produces a token.
func (t *tokenReader) close() {
	select {
	case <-t.done:
	default:
		close(t.done)
	}
}
