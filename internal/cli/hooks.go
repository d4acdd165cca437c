package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hanoi/pkg/errors"
)

// logHooks reports game events to a logger.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnGameStart(_ context.Context, id string, disks int) {
	h.logger.Debug("game started", "game", id, "disks", disks)
}

func (h *logHooks) OnMove(_ context.Context, id string, from, to, moves int) {
	h.logger.Debug("move accepted", "game", id, "from", from, "to", to, "moves", moves)
}

func (h *logHooks) OnMoveRejected(_ context.Context, id string, from, to int, err error) {
	h.logger.Debug("move rejected", "game", id, "from", from, "to", to, "code", errors.GetCode(err), "err", err)
}

func (h *logHooks) OnGameWon(_ context.Context, id string, moves int, duration time.Duration) {
	h.logger.Info("game won", "game", id, "moves", moves, "elapsed", duration.Round(time.Millisecond))
}
