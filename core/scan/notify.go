package scan

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Level is the severity of a user-facing notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a transient message shown to the operator after an event.
type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier receives notifications produced by the processor and the application service.
type Notifier interface {
	Notify(n Notification)
}

type discard struct{}

func (discard) Notify(Notification) {}

// LogNotifier writes notifications to a zap logger.
type LogNotifier struct {
	Logger *zap.Logger
}

// Notify logs the notification at a level matching its severity.
func (l LogNotifier) Notify(n Notification) {
	switch n.Level {
	case LevelError:
		l.Logger.Warn(n.Message)
	default:
		l.Logger.Info(n.Message, zap.String("level", string(n.Level)))
	}
}

// Board keeps the latest notification and dismisses it once its TTL has elapsed.
// It is safe for concurrent use because readers poll it outside the event loop.
type Board struct {
	mu      sync.RWMutex
	current *Notification
	expires time.Time
	ttl     time.Duration
	now     func() time.Time
}

// NewBoard creates a board whose notifications live for ttl.
func NewBoard(ttl time.Duration) *Board {
	return &Board{ttl: ttl, now: time.Now}
}

// Notify replaces the current notification.
func (b *Board) Notify(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = &n
	b.expires = b.now().Add(b.ttl)
}

// Current returns the active notification, if any.
func (b *Board) Current() (Notification, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.current == nil || !b.now().Before(b.expires) {
		return Notification{}, false
	}
	return *b.current, true
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

// Notify forwards n to every notifier.
func (m Multi) Notify(n Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(n)
		}
	}
}
