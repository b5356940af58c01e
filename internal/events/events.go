// Package events publishes completed estimates to a Kafka topic for
// downstream analytics.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	h3 "github.com/uber/h3-go/v4"

	"github.com/trailplan/flight-estimator/internal/core/model"
)

// EstimateEvent is the wire payload. Origin/destination carry an H3 cell so
// consumers can aggregate spatially without re-geocoding.
type EstimateEvent struct {
	EventID          string    `json:"eventId"`
	At               time.Time `json:"at"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	OriginCell       string    `json:"originCell,omitempty"`
	DestinationCell  string    `json:"destinationCell,omitempty"`
	DistanceKm       int       `json:"distanceKm"`
	RouteClass       string    `json:"routeClass"`
	Likely           int       `json:"likely"`
	Low              int       `json:"low"`
	High             int       `json:"high"`
	Currency         string    `json:"currency"`
	Confidence       string    `json:"confidence"`
	SeasonMultiplier float64   `json:"seasonMultiplier"`
}

type Publisher struct {
	logger   *slog.Logger
	producer sarama.SyncProducer
	topic    string
	cellRes  int
	now      func() time.Time
}

func NewPublisher(logger *slog.Logger, brokers, topic string, cellRes int) (*Publisher, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_5_0_0
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewWithProducer(logger, producer, topic, cellRes), nil
}

// NewWithProducer wires an existing producer; used by tests with mocks.
func NewWithProducer(logger *slog.Logger, producer sarama.SyncProducer, topic string, cellRes int) *Publisher {
	if cellRes < 0 || cellRes > 15 {
		cellRes = 5
	}
	return &Publisher{
		logger:   logger,
		producer: producer,
		topic:    topic,
		cellRes:  cellRes,
		now:      time.Now,
	}
}

// Publish emits one event per completed estimate. Failures are reported to
// the caller but never affect the estimate itself.
func (p *Publisher) Publish(_ context.Context, res model.EstimationResult) error {
	ev := p.buildEvent(res)

	raw, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal estimate event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.EventID),
		Value: sarama.ByteEncoder(raw),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send estimate event: %w", err)
	}

	p.logger.Debug("estimate event published",
		"event_id", ev.EventID,
		"topic", p.topic,
		"partition", partition,
		"offset", offset)
	return nil
}

func (p *Publisher) buildEvent(res model.EstimationResult) EstimateEvent {
	return EstimateEvent{
		EventID:          uuid.NewString(),
		At:               p.now().UTC(),
		Origin:           res.Origin.Name,
		Destination:      res.Destination.Name,
		OriginCell:       p.cell(res.Origin.Coordinates),
		DestinationCell:  p.cell(res.Destination.Coordinates),
		DistanceKm:       res.DistanceKm,
		RouteClass:       string(res.Factors.RouteClass),
		Likely:           res.Estimate.Likely,
		Low:              res.Estimate.Low,
		High:             res.Estimate.High,
		Currency:         res.Estimate.Currency,
		Confidence:       res.Confidence,
		SeasonMultiplier: res.Factors.SeasonMultiplier,
	}
}

func (p *Publisher) cell(ll model.LatLon) string {
	cell, err := h3.LatLngToCell(h3.LatLng{Lat: ll.Lat, Lng: ll.Lon}, p.cellRes)
	if err != nil {
		return ""
	}
	return cell.String()
}

func (p *Publisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("close kafka producer: %w", err)
	}
	return nil
}
