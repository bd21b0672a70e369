package reply

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Replier posts one reply to the remote comment service.
type Replier interface {
	Reply(ctx context.Context, commentID, message string) error
}

// Outcome is the result of one send attempt. Err is nil on success.
type Outcome struct {
	CommentID string
	Username  string
	Err       error
}

// OK reports whether the attempt succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Dispatcher submits drafts to the remote service.
type Dispatcher struct {
	replier Replier
	logger  *zap.Logger
}

// NewDispatcher creates a Dispatcher. A nil logger disables logging.
func NewDispatcher(replier Replier, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{replier: replier, logger: logger}
}

// SendOne sends text as a reply to commentID. Blank text is not sent and
// the second return value is false.
func (d *Dispatcher) SendOne(ctx context.Context, commentID, username, text string) (Outcome, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Outcome{}, false
	}

	err := d.replier.Reply(ctx, commentID, text)
	if err != nil {
		d.logger.Warn("Reply failed",
			zap.String("commentID", commentID),
			zap.Error(err))
	}
	return Outcome{CommentID: commentID, Username: username, Err: err}, true
}

// SendAll sends every entry of b at once and returns after all of them
// settled. outcomes[i] belongs to b[i]; one failure does not stop the rest.
// usernames is consulted for display names and may be nil.
func (d *Dispatcher) SendAll(ctx context.Context, b Batch, usernames map[string]string) []Outcome {
	if len(b) == 0 {
		return nil
	}

	outcomes := make([]Outcome, len(b))
	p := pool.New().WithContext(ctx)
	for i, e := range b {
		p.Go(func(ctx context.Context) error {
			err := d.replier.Reply(ctx, e.CommentID, e.Text)
			outcomes[i] = Outcome{CommentID: e.CommentID, Username: usernames[e.CommentID], Err: err}
			if err != nil {
				d.logger.Warn("Bulk reply failed",
					zap.String("commentID", e.CommentID),
					zap.Error(err))
			}
			return nil // Keep the other sends going
		})
	}
	_ = p.Wait()

	s := Summarize(outcomes)
	d.logger.Info("Bulk reply finished",
		zap.Int("ok", s.OK),
		zap.Int("total", s.Total))

	return outcomes
}

// Summary is the aggregate of one batch.
type Summary struct {
	OK    int
	Total int
}

// Summarize counts successful outcomes.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.OK() {
			s.OK++
		}
	}
	return s
}

// Failed returns the number of failed attempts.
func (s Summary) Failed() int {
	return s.Total - s.OK
}

// Tone is ToneWarn when anything failed.
func (s Summary) Tone() Tone {
	if s.Failed() > 0 {
		return ToneWarn
	}
	return ToneOK
}

// Message renders the operator-facing summary line.
func (s Summary) Message() string {
	if s.Failed() == 0 {
		return fmt.Sprintf("✅ Sent %d / %d replies", s.OK, s.Total)
	}
	return fmt.Sprintf("✅ Sent %d / %d replies • %d failed", s.OK, s.Total, s.Failed())
}
