package cli

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestTokenReader(t *testing.T) {
	in := newTokenReader(strings.NewReader("  0 2\n\n x\t-1\n"))
	defer in.close()
	ctx := context.Background()

	tests := []struct {
		n  int
		ok bool
	}{
		{0, true},
		{2, true},
		{0, false},
		{-1, true},
	}
	for i, tt := range tests {
		n, ok, err := in.nextInt(ctx)
		if err != nil {
			t.Fatalf("token %d: error = %v", i, err)
		}
		if ok != tt.ok || (ok && n != tt.n) {
			t.Errorf("token %d = (%d, %v), want (%d, %v)", i, n, ok, tt.n, tt.ok)
		}
	}

	if _, _, err := in.nextInt(ctx); err != io.EOF {
		t.Errorf("after last token error = %v, want io.EOF", err)
	}
}

func TestTokenReaderCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	in := newTokenReader(r)
	defer in.close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := in.next(ctx); err != context.Canceled {
		t.Errorf("next() error = %v, want %v", err, context.Canceled)
	}
}
