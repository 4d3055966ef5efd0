package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/topup-storefront/internal/seed"
	"github.com/jcmexdev/topup-storefront/internal/store"
	"github.com/jcmexdev/topup-storefront/internal/store/domain"
	"github.com/jcmexdev/topup-storefront/internal/store/idgen"
)

func TestScriptedSession(t *testing.T) {
	initial, err := seed.Default()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.New(initial, store.WithLogger(logger), store.WithIDGenerator(idgen.Sequence(1)))

	runCheckout(s, logger)
	runAdmin(s, logger)

	st := s.Snapshot()
	order, ok := st.FindOrder("ORD-TEST-0001")
	require.True(t, ok)
	assert.Equal(t, domain.OrderProcessing, order.Status)
	assert.Empty(t, st.Cart)

	for _, p := range st.Integrations {
		assert.Equal(t, domain.IntegrationOnline, p.Status, p.ID)
	}
	for _, u := range st.Users {
		assert.NotEqual(t, domain.UserNew, u.Status, u.ID)
	}

	out := summarize(st)
	assert.Equal(t, 4, out.Orders)
	assert.Equal(t, "ORD-TEST-0001", out.LatestOrder)
	assert.Zero(t, out.CartItems)
	assert.Len(t, out.LatestLogs, 5)
}
