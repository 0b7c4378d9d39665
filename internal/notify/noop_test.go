package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stokwatch/stokwatch/pkg/logger"
)

func TestNoOpNotifier_Send(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(logger.Discard())
	assert.NoError(t, n.Send(context.Background(), testMessage()))
}
