package migration

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/LovationAdmin/travel-api/models"
)

func TestSampleDataShape(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for seed := int64(0); seed < 50; seed++ {
		set := SampleData(rand.New(rand.NewSource(seed)), now)

		if len(set.Users) != 2 || set.Users[0].Role != models.RoleAdmin || set.Users[1].Role != models.RoleUser {
			t.Fatalf("seed %d: unexpected users %+v", seed, set.Users)
		}
		if len(set.Travels) != 3 || len(set.Contacts) != 3 {
			t.Fatalf("seed %d: expected 3 travels and 3 contacts", seed)
		}
		if len(set.General) != 2*len(set.Travels) {
			t.Fatalf("seed %d: expected two general entries per travel, got %d", seed, len(set.General))
		}

		for _, st := range set.Travels {
			if n := len(st.Participants); n < 5 || n > 10 {
				t.Fatalf("seed %d: %s has %d participants", seed, st.Travel.Name, n)
			}
			for i, p := range st.Participants {
				if p.AmountPaid < 500 || p.AmountPaid > 1500 {
					t.Fatalf("seed %d: amountPaid %v out of range", seed, p.AmountPaid)
				}
				if p.Status != participantStatus(i) {
					t.Fatalf("seed %d: participant %d has status %q", seed, i, p.Status)
				}
			}

			commission := st.Finances[0]
			if commission.Type != models.FinanceTypeIncome || commission.Amount != st.Travel.Commission ||
				!commission.Date.Equal(st.Travel.StartDate) {
				t.Fatalf("seed %d: bad commission entry %+v", seed, commission)
			}
			expenses := st.Finances[1:]
			if len(expenses) < 2 || len(expenses) > 4 {
				t.Fatalf("seed %d: %d expenses for %s", seed, len(expenses), st.Travel.Name)
			}
			for _, e := range expenses {
				if e.Type != models.FinanceTypeExpense || e.Amount < 100 || e.Amount > 400 {
					t.Fatalf("seed %d: bad expense %+v", seed, e)
				}
			}
		}

		for _, g := range set.General {
			if g.TravelID != nil || !g.Date.Equal(now) {
				t.Fatalf("seed %d: general entry should be detached and dated now: %+v", seed, g)
			}
		}
	}
}

func TestParticipantStatusCycle(t *testing.T) {
	want := []string{
		models.ParticipantStatusCancelled,  // 0
		models.ParticipantStatusConfirmed,  // 1
		models.ParticipantStatusConfirmed,  // 2
		models.ParticipantStatusRegistered, // 3
		models.ParticipantStatusConfirmed,  // 4
		models.ParticipantStatusCancelled,  // 5
		models.ParticipantStatusRegistered, // 6
	}
	for i, w := range want {
		if got := participantStatus(i); got != w {
			t.Fatalf("participantStatus(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestSeederSampleConcurrent(t *testing.T) {
	s := NewSeeder(nil)

	var wg sync.WaitGroup
	sets := make([]SampleSet, 8)
	for i := range sets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sets[i] = s.sample()
		}(i)
	}
	wg.Wait()

	for i, set := range sets {
		if len(set.Travels) != 3 || len(set.Users) != 2 {
			t.Fatalf("sample %d: unexpected shape %d travels %d users", i, len(set.Travels), len(set.Users))
		}
	}
}
