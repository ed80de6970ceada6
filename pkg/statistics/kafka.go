package statistics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

type StatisticsError string

func (e StatisticsError) Error() string {
	return string(e)
}

const (
	ErrNoWriter StatisticsError = "statistics has no writer"
	ErrNoReader StatisticsError = "statistics has no reader"
)

// Request is one recorded API request.
type Request struct {
	Method  string
	URL     string
	Body    string
	Headers string
}

type RequestSaver interface {
	SaveRequest(ctx context.Context, req Request) error
}

// KafkaStatistics pushes recorded requests to a kafka topic on the API side
// and drains them into persistent storage on the consumer side. Either the
// writer or the reader may be nil depending on which role the process plays.
type KafkaStatistics struct {
	reader *kafka.Reader
	writer *kafka.Writer
	logger *slog.Logger
	repo   RequestSaver
}

func NewKafkaStatistics(reader *kafka.Reader, writer *kafka.Writer, logger *slog.Logger, repo RequestSaver) *KafkaStatistics {
	return &KafkaStatistics{
		reader: reader,
		writer: writer,
		logger: logger,
		repo:   repo,
	}
}

func (s *KafkaStatistics) HealthCheck(_ context.Context) error {
	return nil
}

func (s *KafkaStatistics) Push(ctx context.Context, req Request) error {
	if s.writer == nil {
		return ErrNoWriter
	}

	payload, err := kafka.Marshal(req)
	if err != nil {
		return err
	}

	uid := uuid.New().String()
	msg := kafka.Message{
		Key:   []byte(uid),
		Value: payload,
	}
	s.logger.Debug("write message to kafka...",
		slog.String("topic", s.writer.Topic),
		slog.String("key", uid),
	)

	err = s.writer.WriteMessages(ctx, msg)
	if errors.Is(err, kafka.UnknownTopicOrPartition) {
		time.Sleep(5 * time.Second) // Wait for auto creating topic
		err = s.writer.WriteMessages(ctx, msg)
	}

	return err
}

// SaveRequest reads one message and persists it. On failure the offset is
// rewound so the message is not lost.
func (s *KafkaStatistics) SaveRequest(ctx context.Context) (err error) {
	if s.reader == nil {
		return ErrNoReader
	}

	msg, err := s.reader.ReadMessage(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			err = multierror.Append(err, s.reader.SetOffset(msg.Offset))
		}
	}()

	s.logger.Debug("read message from kafka",
		slog.String("topic", msg.Topic),
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
		slog.String("key", string(msg.Key)),
	)

	var req Request
	err = kafka.Unmarshal(msg.Value, &req)
	if err != nil {
		return err
	}

	return s.repo.SaveRequest(ctx, req)
}
