package statistics_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ofarias/inventario-api/pkg/statistics"
)

func TestPushWithoutWriter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stat := statistics.NewKafkaStatistics(nil, nil, logger, nil)

	err := stat.Push(context.Background(), statistics.Request{Method: "GET", URL: "/users"})

	assert.ErrorIs(t, err, statistics.ErrNoWriter)
}

func TestSaveRequestWithoutReader(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stat := statistics.NewKafkaStatistics(nil, nil, logger, nil)

	err := stat.SaveRequest(context.Background())

	assert.ErrorIs(t, err, statistics.ErrNoReader)
}
