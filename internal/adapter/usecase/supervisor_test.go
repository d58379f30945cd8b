package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

func TestSupervisorReconcile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.setSpend("1.00")
	f.reportSpend("r1")
	f.reportSpend("r2")
	f.network.EXPECT().Status(mock.Anything, mock.Anything).Return(port.RemoteStatusPaused, nil).Maybe()

	f.store.PutCampaign(testCampaign(2, domain.StateLowSpend))
	_, err := f.ctrl.Evaluate(ctx, 2)
	require.NoError(t, err)

	disabled := testCampaign(2, domain.StateLowSpend)
	disabled.MonitoringEnabled = false
	f.store.PutCampaign(disabled)
	f.store.PutCampaign(testCampaign(1, domain.StateUnknown))

	sup := NewSupervisor(f.store.Campaigns(), f.ctrl, time.Hour, f.ctrl.logger)
	armed, torn, err := sup.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, armed)
	assert.Equal(t, 1, torn)
	assert.Equal(t, []int64{1}, f.ctrl.Monitored())

	// Wait for the immediate tick armed for campaign 1, then make sure it
	// has released the campaign lock before the test ends.
	require.Eventually(t, func() bool {
		return f.campaign(t, 1).State == domain.StateLowSpend
	}, 2*time.Second, 10*time.Millisecond)
	_, err = f.ctrl.Evaluate(ctx, 1)
	require.NoError(t, err)

	armed, torn, err = sup.Reconcile(ctx)
	require.NoError(t, err)
	assert.Zero(t, armed)
	assert.Zero(t, torn)
}

func TestSupervisorStopCancelsMonitors(t *testing.T) {
	f := newFixture(t, nil)
	f.setSpend("1.00")
	f.reportSpend("r1")
	f.network.EXPECT().Status(mock.Anything, "r1").Return(port.RemoteStatusPaused, nil).Maybe()
	f.store.PutCampaign(testCampaign(1, domain.StateUnknown))

	sup := NewSupervisor(f.store.Campaigns(), f.ctrl, time.Hour, f.ctrl.logger)
	sup.Start(context.Background())

	require.Eventually(t, func() bool {
		return f.campaign(t, 1).State == domain.StateLowSpend
	}, 2*time.Second, 10*time.Millisecond)
	_, err := f.ctrl.Evaluate(context.Background(), 1)
	require.NoError(t, err)

	sup.Stop()
	sup.Stop()
	assert.Empty(t, f.ctrl.Monitored())
	assert.False(t, f.ctrl.Watch(1))
}
