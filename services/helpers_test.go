package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/repository/repotest"
)

type recordedEvent struct {
	entity, action string
	id             uint
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (n *recordingNotifier) Notify(entity, action string, id uint) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, recordedEvent{entity, action, id})
}

func (n *recordingNotifier) last() recordedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.events) == 0 {
		return recordedEvent{}
	}
	return n.events[len(n.events)-1]
}

func f64(v float64) *float64 { return &v }
func u(v uint) *uint         { return &v }
func str(v string) *string   { return &v }

func newTravel(t *testing.T, store *repotest.Store, name string, commission float64) *models.Travel {
	t.Helper()
	travel := &models.Travel{
		Name:         name,
		StartDate:    time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 3, 27, 0, 0, 0, 0, time.UTC),
		Location:     "Barcelona, Spain",
		TravelAgency: "CityEscapes",
		Commission:   commission,
		TotalFee:     18000,
		Status:       models.TravelStatusPlanned,
	}
	if err := store.Travels().Create(context.Background(), travel); err != nil {
		t.Fatalf("create travel: %v", err)
	}
	return travel
}
