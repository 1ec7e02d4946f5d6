package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBoard(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	b := NewBoard(3500 * time.Millisecond)
	b.now = func() time.Time { return now }

	_, ok := b.Current()
	assert.False(t, ok)

	b.Notify(Notification{Level: LevelSuccess, Message: "ok"})
	n, ok := b.Current()
	assert.True(t, ok)
	assert.Equal(t, "ok", n.Message)

	now = now.Add(4 * time.Second)
	_, ok = b.Current()
	assert.False(t, ok, "notification auto-dismisses")
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := LogNotifier{Logger: zap.New(core)}

	n.Notify(Notification{Level: LevelError, Message: "bad"})
	n.Notify(Notification{Level: LevelSuccess, Message: "good"})

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, "good", entries[1].Message)
}

func TestMulti(t *testing.T) {
	a := NewBoard(time.Minute)
	b := NewBoard(time.Minute)

	Multi{a, nil, b}.Notify(Notification{Level: LevelInfo, Message: "hi"})

	_, okA := a.Current()
	_, okB := b.Current()
	assert.True(t, okA)
	assert.True(t, okB)
}
