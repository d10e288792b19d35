// migration/seed.go
// Sample data set loaded by POST /api/admin/seed-database and cmd/seed.
// Seeding wipes every table first.

package migration

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/utils"

	"gorm.io/gorm"
)

type SampleUser struct {
	Username string
	Email    string
	Password string
	Role     string
}

// SampleTravel is a travel with the rows that reference it. TravelID on the
// children is filled in once the travel has an id.
type SampleTravel struct {
	Travel       models.Travel
	Participants []models.Participant
	Finances     []models.Finance
}

type SampleSet struct {
	Users    []SampleUser
	Travels  []SampleTravel
	General  []models.Finance
	Contacts []models.Contact
}

var expenseCategories = []string{"Marketing", "Operations", "Staff", "Other"}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleTravels() []models.Travel {
	return []models.Travel{
		{
			Name:         "Summer Retreat in Sardinia",
			Description:  "A relaxing beach retreat on the beautiful island of Sardinia.",
			StartDate:    date("2023-07-15"),
			EndDate:      date("2023-07-22"),
			Location:     "Sardinia, Italy",
			TravelAgency: "SunTours",
			Commission:   1500,
			TotalFee:     25000,
			Status:       models.TravelStatusCompleted,
		},
		{
			Name:         "Winter Adventure in Alps",
			Description:  "Ski and snowboarding adventure in the Swiss Alps.",
			StartDate:    date("2023-12-10"),
			EndDate:      date("2023-12-17"),
			Location:     "Swiss Alps",
			TravelAgency: "SnowTreks",
			Commission:   2000,
			TotalFee:     32000,
			Status:       models.TravelStatusPlanned,
		},
		{
			Name:         "Spring Break in Barcelona",
			Description:  "Cultural experience in the vibrant city of Barcelona.",
			StartDate:    date("2024-03-20"),
			EndDate:      date("2024-03-27"),
			Location:     "Barcelona, Spain",
			TravelAgency: "CityEscapes",
			Commission:   1200,
			TotalFee:     18000,
			Status:       models.TravelStatusPlanned,
		},
	}
}

func sampleContacts() []models.Contact {
	return []models.Contact{
		{
			FirstName:    "Maria",
			LastName:     "Rodriguez",
			Email:        "maria@suntours.com",
			Phone:        "+34 123 456 789",
			Organization: "SunTours",
			Role:         "Travel Agent",
			Notes:        "Main contact for summer destinations.",
		},
		{
			FirstName:    "Hans",
			LastName:     "Muller",
			Email:        "hans@snowtreks.com",
			Phone:        "+41 987 654 321",
			Organization: "SnowTreks",
			Role:         "Sales Manager",
			Notes:        "Handles all winter travel arrangements.",
		},
		{
			FirstName:    "Carlos",
			LastName:     "Garcia",
			Email:        "carlos@cityescapes.com",
			Phone:        "+34 555 123 456",
			Organization: "CityEscapes",
			Role:         "Tour Guide",
			Notes:        "Expert on Barcelona tours.",
		},
	}
}

func participantStatus(i int) string {
	switch {
	case i%5 == 0:
		return models.ParticipantStatusCancelled
	case i%3 == 0:
		return models.ParticipantStatusRegistered
	default:
		return models.ParticipantStatusConfirmed
	}
}

// SampleData builds the data set. rng drives participant counts, amounts and
// expense categories; now dates the general office entries.
func SampleData(rng *rand.Rand, now time.Time) *SampleSet {
	set := &SampleSet{
		Users: []SampleUser{
			{Username: "admin", Email: "admin@example.com", Password: "password", Role: models.RoleAdmin},
			{Username: "user", Email: "user@example.com", Password: "password", Role: models.RoleUser},
		},
		Contacts: sampleContacts(),
	}

	for _, t := range sampleTravels() {
		st := SampleTravel{Travel: t}

		count := rng.Intn(6) + 5
		for i := 0; i < count; i++ {
			st.Participants = append(st.Participants, models.Participant{
				FirstName:  fmt.Sprintf("FirstName%d", i),
				LastName:   fmt.Sprintf("LastName%d", i),
				Email:      fmt.Sprintf("participant%d@example.com", i),
				Phone:      fmt.Sprintf("+1 555-%d", 100+i),
				AmountPaid: float64(rng.Intn(1001) + 500),
				Status:     participantStatus(i),
				Notes:      fmt.Sprintf("Notes for participant %d", i),
			})
		}

		st.Finances = append(st.Finances, models.Finance{
			Type:        models.FinanceTypeIncome,
			Category:    "Commission",
			Amount:      t.Commission,
			Date:        t.StartDate,
			Description: "Commission for " + t.Name,
		})

		expenses := rng.Intn(3) + 2
		for i := 0; i < expenses; i++ {
			st.Finances = append(st.Finances, models.Finance{
				Type:        models.FinanceTypeExpense,
				Category:    expenseCategories[rng.Intn(len(expenseCategories))],
				Amount:      float64(rng.Intn(301) + 100),
				Date:        t.StartDate,
				Description: fmt.Sprintf("Expense %d for %s", i+1, t.Name),
			})
		}

		// Office costs are booked once per travel, detached from it.
		set.General = append(set.General,
			models.Finance{
				Type:        models.FinanceTypeExpense,
				Category:    "Office",
				Amount:      500,
				Date:        now,
				Description: "Monthly office rent",
			},
			models.Finance{
				Type:        models.FinanceTypeExpense,
				Category:    "Utilities",
				Amount:      150,
				Date:        now,
				Description: "Monthly utilities",
			},
		)

		set.Travels = append(set.Travels, st)
	}

	return set
}

// Seeder loads a SampleSet into Postgres inside one transaction. It is safe
// for concurrent use.
type Seeder struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, now: time.Now}
}

// sample draws a fresh data set. rand.Rand is not safe for concurrent use,
// so every call gets its own generator.
func (s *Seeder) sample() SampleSet {
	now := s.now()
	return *SampleData(rand.New(rand.NewSource(now.UnixNano())), now)
}

func (s *Seeder) Seed(ctx context.Context) error {
	set := s.sample()

	users := make([]models.User, 0, len(set.Users))
	for _, u := range set.Users {
		hash, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Username, err)
		}
		users = append(users, models.User{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: hash,
			Role:         u.Role,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`TRUNCATE TABLE participants, finances, travels, contacts, users RESTART IDENTITY CASCADE`).Error; err != nil {
			return fmt.Errorf("wipe tables: %w", err)
		}

		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("create users: %w", err)
		}

		var participants, finances int
		for _, st := range set.Travels {
			travel := st.Travel
			if err := tx.Create(&travel).Error; err != nil {
				return fmt.Errorf("create travel %q: %w", travel.Name, err)
			}

			for i := range st.Participants {
				st.Participants[i].TravelID = travel.ID
			}
			if err := tx.Create(&st.Participants).Error; err != nil {
				return fmt.Errorf("create participants for %q: %w", travel.Name, err)
			}

			travelID := travel.ID
			for i := range st.Finances {
				st.Finances[i].TravelID = &travelID
			}
			if err := tx.Create(&st.Finances).Error; err != nil {
				return fmt.Errorf("create finances for %q: %w", travel.Name, err)
			}

			participants += len(st.Participants)
			finances += len(st.Finances)
		}

		if err := tx.Create(&set.General).Error; err != nil {
			return fmt.Errorf("create general finances: %w", err)
		}
		if err := tx.Create(&set.Contacts).Error; err != nil {
			return fmt.Errorf("create contacts: %w", err)
		}

		utils.SafeInfo("seeded %d users, %d travels, %d participants, %d finances, %d contacts",
			len(users), len(set.Travels), participants, finances+len(set.General), len(set.Contacts))
		return nil
	})
}
