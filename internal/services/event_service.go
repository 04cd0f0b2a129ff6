package services

import (
	"context"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/metrics"
	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/raffle"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

var _ raffle.EventSink = (*EventService)(nil)

// EventService records raffle events in the event log and the winners history.
// Publish runs while the raffle is locked and must not call back into it.
type EventService struct {
	eventRepo  repositories.EventRepository
	winnerRepo repositories.WinnerRepository
	metrics    *metrics.Metrics
}

func NewEventService(eventRepo repositories.EventRepository, winnerRepo repositories.WinnerRepository, m *metrics.Metrics) *EventService {
	return &EventService{
		eventRepo:  eventRepo,
		winnerRepo: winnerRepo,
		metrics:    m,
	}
}

// Publish is best effort: the raffle state is already committed, so
// storage errors are logged and not returned.
func (s *EventService) Publish(ctx context.Context, event raffle.Event) {
	record := toEventRecord(event)

	switch e := event.(type) {
	case raffle.EntryRecorded:
		s.metrics.EntryRecorded()
	case raffle.UpkeepTriggered:
		s.metrics.UpkeepTriggered()
	case raffle.RequestReissued:
		s.metrics.RequestReissued()
	case raffle.WinnerPicked:
		s.metrics.WinnerPicked(e.Amount)
		winner := &models.Winner{
			Round:       e.Round,
			Address:     e.Winner.Hex(),
			Amount:      e.Amount.String(),
			RequestID:   e.RequestID,
			RandomValue: e.RandomValue.String(),
			Players:     e.Players,
			PaidAt:      e.At,
		}
		if err := s.winnerRepo.Create(ctx, winner); err != nil {
			slog.Error("Failed to record winner", "error", err, "round", e.Round, "requestId", e.RequestID)
		}
	}

	if err := s.eventRepo.Create(ctx, record); err != nil {
		slog.Error("Failed to record raffle event", "error", err, "type", record.Type, "round", record.Round)
		return
	}
	slog.Debug("Raffle event recorded", "type", record.Type, "round", record.Round)
}

func toEventRecord(event raffle.Event) *models.RaffleEvent {
	record := &models.RaffleEvent{Type: event.EventType()}

	var at time.Time
	switch e := event.(type) {
	case raffle.EntryRecorded:
		record.Round = e.Round
		record.Participant = e.Participant.Hex()
		record.Amount = e.Amount.String()
		at = e.At
	case raffle.UpkeepTriggered:
		record.Round = e.Round
		record.RequestID = e.RequestID
		record.Players = e.Players
		record.Amount = e.Pool.String()
		at = e.At
	case raffle.WinnerPicked:
		record.Round = e.Round
		record.Participant = e.Winner.Hex()
		record.Amount = e.Amount.String()
		record.RequestID = e.RequestID
		record.RandomValue = e.RandomValue.String()
		record.Players = e.Players
		at = e.At
	case raffle.RequestReissued:
		record.Round = e.Round
		record.RequestID = e.RequestID
		record.PreviousRequestID = e.PreviousRequestID
		at = e.At
	}
	record.EmittedAt = at
	return record
}
