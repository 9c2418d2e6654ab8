package jobs_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"coffeeshop/internal/core/application/services"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrders struct {
	views []services.OrderView
}

func (s stubOrders) ViewOrder(_ context.Context, id int) (services.OrderView, error) {
	return services.OrderView{ID: id}, nil
}

func (s stubOrders) ViewActiveOrders(context.Context) ([]services.OrderView, error) {
	return s.views, nil
}

func TestActiveOrdersReportJob_RunOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := queries.NewGetActiveOrdersQueryHandler(stubOrders{views: []services.OrderView{{ID: 2}, {ID: 5}}})
	job, err := jobs.NewActiveOrdersReportJob(handler, "", logger)
	require.NoError(t, err)

	report, err := job.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	assert.Equal(t, []int{2, 5}, report.IDs)
	assert.Contains(t, buf.String(), "Active orders")
	assert.Contains(t, buf.String(), "count=2")
}

func TestActiveOrdersReportJob_Schedule(t *testing.T) {
	handler := queries.NewGetActiveOrdersQueryHandler(stubOrders{})

	t.Run("invalid schedule is rejected", func(t *testing.T) {
		_, err := jobs.NewActiveOrdersReportJob(handler, "every now and then", nil)
		require.Error(t, err)

		_, err = jobs.NewJobManager(handler, "61 * * * * *", nil)
		require.Error(t, err)
	})

	t.Run("job runs on its schedule", func(t *testing.T) {
		var buf syncBuffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		manager, err := jobs.NewJobManager(handler, "* * * * * *", logger)
		require.NoError(t, err)
		require.NoError(t, manager.StartAll())
		t.Cleanup(manager.StopAll)

		assert.Eventually(t, func() bool {
			return bytes.Contains(buf.Bytes(), []byte("count=0"))
		}, 3*time.Second, 50*time.Millisecond)
	})
}
