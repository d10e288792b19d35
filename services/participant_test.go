package services

import (
	"context"
	"errors"
	"testing"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/repository/repotest"
)

func participantRequest(travelID uint) models.CreateParticipantRequest {
	return models.CreateParticipantRequest{
		FirstName: "FirstName1",
		LastName:  "LastName1",
		Email:     "participant1@example.com",
		Phone:     "+1 555-101",
		TravelID:  travelID,
	}
}

func TestParticipantCreateRequiresTravel(t *testing.T) {
	store := repotest.NewStore()
	svc := NewParticipantService(store.Participants(), store.Travels(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, participantRequest(99))
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Travel" {
		t.Fatalf("expected Travel not found, got %v", err)
	}

	n, _ := store.Participants().Count(ctx)
	if n != 0 {
		t.Fatalf("expected no participant persisted, found %d", n)
	}
}

func TestParticipantCreateJoinsTravel(t *testing.T) {
	store := repotest.NewStore()
	notifier := &recordingNotifier{}
	svc := NewParticipantService(store.Participants(), store.Travels(), notifier)
	travel := newTravel(t, store, "Summer Retreat in Sardinia", 1500)

	p, err := svc.Create(context.Background(), participantRequest(travel.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Status != models.ParticipantStatusRegistered || p.AmountPaid != 0 {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.Travel == nil || *p.Travel != (models.TravelRef{ID: travel.ID, Name: travel.Name}) {
		t.Fatalf("expected travel projection, got %+v", p.Travel)
	}
	if got := notifier.last(); got.entity != "participant" || got.action != ActionCreated {
		t.Fatalf("unexpected notification %+v", got)
	}
}

func TestParticipantUpdateToMissingTravelLeavesRowUnchanged(t *testing.T) {
	store := repotest.NewStore()
	svc := NewParticipantService(store.Participants(), store.Travels(), nil)
	ctx := context.Background()
	travel := newTravel(t, store, "Winter Adventure in Alps", 2000)

	p, err := svc.Create(ctx, participantRequest(travel.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, p.ID, models.UpdateParticipantRequest{
		TravelID:  u(404),
		FirstName: str("Changed"),
	})
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Travel" {
		t.Fatalf("expected Travel not found, got %v", err)
	}

	after, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if after.TravelID != travel.ID || after.FirstName != "FirstName1" {
		t.Fatalf("row changed after failed update: %+v", after)
	}
}

func TestParticipantUpdateMovesTravel(t *testing.T) {
	store := repotest.NewStore()
	svc := NewParticipantService(store.Participants(), store.Travels(), nil)
	ctx := context.Background()
	from := newTravel(t, store, "From", 100)
	to := newTravel(t, store, "To", 100)

	p, err := svc.Create(ctx, participantRequest(from.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	moved, err := svc.Update(ctx, p.ID, models.UpdateParticipantRequest{
		TravelID: u(to.ID),
		Status:   str(models.ParticipantStatusConfirmed),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if moved.TravelID != to.ID || moved.Travel == nil || moved.Travel.Name != "To" {
		t.Fatalf("travel not moved: %+v", moved)
	}
	if moved.Status != models.ParticipantStatusConfirmed {
		t.Fatalf("status not applied: %q", moved.Status)
	}

	byTravel, err := svc.ListByTravel(ctx, to.ID)
	if err != nil {
		t.Fatalf("list by travel: %v", err)
	}
	if len(byTravel) != 1 || byTravel[0].ID != p.ID {
		t.Fatalf("unexpected list %+v", byTravel)
	}
}

func TestParticipantDeleteMissing(t *testing.T) {
	store := repotest.NewStore()
	svc := NewParticipantService(store.Participants(), store.Travels(), nil)

	err := svc.Delete(context.Background(), 1)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Error() != "Participant not found" {
		t.Fatalf("expected Participant not found, got %v", err)
	}
}

func TestParticipantListByMissingTravel(t *testing.T) {
	store := repotest.NewStore()
	svc := NewParticipantService(store.Participants(), store.Travels(), nil)

	_, err := svc.ListByTravel(context.Background(), 5)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found, got %v", err)
	}
}
