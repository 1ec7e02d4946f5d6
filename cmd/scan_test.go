package cmd

import (
	"context"
	"strings"
	"testing"

	inv "inventory-control/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScanLines_SkipsBlankLines(t *testing.T) {
	sess, err := openSession(context.Background(), testConfig(t), zap.NewNop(), nil)
	require.NoError(t, err)
	defer sess.Close()

	count, err := scanLines(sess.service, strings.NewReader("A\n\n   \nA\r\nB\n"))

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Len(t, sess.service.History(), 3)
	assert.Len(t, sess.service.Incidents(), 3)
}

func TestScanCodes(t *testing.T) {
	sess, err := openSession(context.Background(), testConfig(t), zap.NewNop(), nil)
	require.NoError(t, err)
	defer sess.Close()
	_, err = sess.service.AddRecord(inv.RealRecord{Code: "A", Qty: 1})
	require.NoError(t, err)

	count, err := scanCodes(sess.service, []string{"A", " ", "A"})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 3, sess.service.Real()[0].Qty)
}

func TestFeedKeys(t *testing.T) {
	sess, err := openSession(context.Background(), testConfig(t), zap.NewNop(), nil)
	require.NoError(t, err)
	defer sess.Close()
	_, err = sess.service.AddRecord(inv.RealRecord{Code: "AB", Qty: 1})
	require.NoError(t, err)

	count, err := feedKeys(sess.service, strings.NewReader("AB\n\nAB\nC"))

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 3, sess.service.Real()[0].Qty)
}
