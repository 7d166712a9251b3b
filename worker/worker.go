package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"golang.org/x/exp/slog"

	"ytscope/extract"
	"ytscope/model"
)

const (
	SubjectRequests = "extract.request"
	SubjectResults  = "extract.result"
)

// Worker consumes extraction requests from NATS and runs them through
// the pipeline, one at a time.
type Worker struct {
	conn     *nats.Conn
	sub      *nats.Subscription
	pipeline *extract.Pipeline
	logger   *slog.Logger
}

func NewWorker(natsURL string, pipeline *extract.Pipeline, logger *slog.Logger) (*Worker, error) {
	conn, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	return &Worker{
		conn:     conn,
		pipeline: pipeline,
		logger:   logger,
	}, nil
}

func (w *Worker) Start(ctx context.Context) error {
	sub, err := w.conn.Subscribe(SubjectRequests, func(msg *nats.Msg) {
		w.handle(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", SubjectRequests, err)
	}
	w.sub = sub
	w.logger.Info("extract worker subscribed", slog.String("subject", SubjectRequests))

	return nil
}

func (w *Worker) Stop() {
	if w.sub != nil {
		w.sub.Unsubscribe()
	}
	if w.conn != nil {
		w.conn.Close()
	}
}

func (w *Worker) handle(ctx context.Context, msg *nats.Msg) {
	var req model.ExtractRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		w.logger.Error("failed to unmarshal extract request", err)
		return
	}
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	w.logger.Info("processing extract request",
		slog.String("requestid", req.RequestID),
		slog.String("videoid", req.VideoID))

	result := w.pipeline.Run(ctx, req)

	data, err := json.Marshal(result)
	if err != nil {
		w.logger.Error("failed to marshal extract result", err)
		return
	}
	if err := w.conn.Publish(SubjectResults, data); err != nil {
		w.logger.Error("failed to publish extract result", err)
		return
	}
	w.logger.Info("completed extract request",
		slog.String("requestid", req.RequestID),
		slog.String("videoid", req.VideoID))
}
