package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"

	"github.com/trailplan/flight-estimator/internal/core/model"
)

func sampleResult() model.EstimationResult {
	return model.EstimationResult{
		Origin: model.Endpoint{
			Name:        "New York, NY, United States",
			Coordinates: model.LatLon{Lat: 40.7128, Lon: -74.0060},
		},
		Destination: model.Endpoint{
			Name:        "Paris, France",
			Coordinates: model.LatLon{Lat: 48.8566, Lon: 2.3522},
		},
		DistanceKm: 5837,
		Estimate:   model.PriceEstimate{Low: 650, Likely: 867, High: 1301, Currency: "USD"},
		Confidence: model.ConfidenceHigh,
		Factors: model.Factors{
			RouteClass:         model.LongHaul,
			CostPerKm:          0.11,
			SeasonMultiplier:   1.35,
			TripTypeMultiplier: 1.0,
		},
	}
}

func TestPublish_SendsEventWithCells(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	mp := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	var captured []byte
	mp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		raw, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		captured = raw
		return nil
	})

	p := NewWithProducer(l, mp, "flight-estimates", 5)
	if err := p.Publish(context.Background(), sampleResult()); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	var ev EstimateEvent
	if err := json.Unmarshal(captured, &ev); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if ev.EventID == "" {
		t.Fatalf("event id missing")
	}
	if ev.OriginCell == "" || ev.DestinationCell == "" {
		t.Fatalf("expected h3 cells on both endpoints: %+v", ev)
	}
	if ev.OriginCell == ev.DestinationCell {
		t.Fatalf("NY and Paris must map to different cells")
	}
	if ev.RouteClass != "LONG_HAUL" || ev.DistanceKm != 5837 || ev.Likely != 867 {
		t.Fatalf("unexpected event payload: %+v", ev)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestPublish_ProducerErrorSurfaces(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	mp := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	mp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewWithProducer(l, mp, "flight-estimates", 5)
	if err := p.Publish(context.Background(), sampleResult()); err == nil {
		t.Fatalf("expected producer error to surface")
	}
	_ = p.Close()
}

func TestBuildEvent_DistinctIDs(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	mp := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	p := NewWithProducer(l, mp, "flight-estimates", 5)

	a := p.buildEvent(sampleResult())
	b := p.buildEvent(sampleResult())
	if a.EventID == b.EventID {
		t.Fatalf("event ids must be unique")
	}
	_ = p.Close()
}
