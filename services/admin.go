package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/repository"
	"github.com/LovationAdmin/travel-api/utils"

	"github.com/google/uuid"
)

// Seeder replaces the database contents with the sample data set.
type Seeder interface {
	Seed(ctx context.Context) error
}

// ExportEntities lists the entities accepted by ExportCSV.
var ExportEntities = []string{"travels", "participants", "finances", "contacts"}

type AdminService struct {
	travels      repository.TravelRepository
	participants repository.ParticipantRepository
	finances     repository.FinanceRepository
	contacts     repository.ContactRepository
	users        repository.UserRepository
	seeder       Seeder
	notifier     Notifier

	exportDir  string
	seedSecret string
	startedAt  time.Time
	now        func() time.Time
	create     func(path string) (io.WriteCloser, error)
}

type AdminConfig struct {
	ExportDir  string
	SeedSecret string
}

func NewAdminService(
	travels repository.TravelRepository,
	participants repository.ParticipantRepository,
	finances repository.FinanceRepository,
	contacts repository.ContactRepository,
	users repository.UserRepository,
	seeder Seeder,
	notifier Notifier,
	cfg AdminConfig,
) *AdminService {
	return &AdminService{
		travels:      travels,
		participants: participants,
		finances:     finances,
		contacts:     contacts,
		users:        users,
		seeder:       seeder,
		notifier:     orNop(notifier),
		exportDir:    cfg.ExportDir,
		seedSecret:   cfg.SeedSecret,
		startedAt:    time.Now(),
		now:          time.Now,
		create:       createFile,
	}
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// ============================================================================
// STATISTICS
// ============================================================================

func (s *AdminService) Stats(ctx context.Context) (*models.SystemStats, error) {
	var stats models.SystemStats
	var err error

	counts := []struct {
		name  string
		count func(context.Context) (int64, error)
		dst   *int64
	}{
		{"travels", s.travels.Count, &stats.Counts.Travels},
		{"participants", s.participants.Count, &stats.Counts.Participants},
		{"finances", s.finances.Count, &stats.Counts.Finances},
		{"contacts", s.contacts.Count, &stats.Counts.Contacts},
		{"users", s.users.Count, &stats.Counts.Users},
	}
	for _, c := range counts {
		if *c.dst, err = c.count(ctx); err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
	}

	finances, err := s.finances.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finances: %w", err)
	}
	ledger := Summarize(finances)
	stats.Finances = models.LedgerTotals{
		TotalIncome:   ledger.Income,
		TotalExpenses: ledger.Expenses,
		Balance:       ledger.Balance,
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats.System = models.SystemInfo{
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		Uptime:     s.now().Sub(s.startedAt).Seconds(),
		Goroutines: runtime.NumGoroutine(),
		Memory:     models.MemoryInfo{Alloc: mem.HeapAlloc, Sys: mem.Sys},
	}

	return &stats, nil
}

// ============================================================================
// EXPORT
// ============================================================================

type exportSnapshot struct {
	travels      []models.Travel
	participants []models.Participant
	finances     []models.Finance
	contacts     []models.Contact
}

func (s *AdminService) snapshot(ctx context.Context) (*exportSnapshot, error) {
	var snap exportSnapshot
	var err error
	if snap.travels, err = s.travels.List(ctx); err != nil {
		return nil, fmt.Errorf("list travels: %w", err)
	}
	if snap.participants, err = s.participants.List(ctx); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	if snap.finances, err = s.finances.List(ctx); err != nil {
		return nil, fmt.Errorf("list finances: %w", err)
	}
	if snap.contacts, err = s.contacts.List(ctx); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return &snap, nil
}

// Export writes one JSON file per entity plus summary.json into a fresh
// directory under the export root.
func (s *AdminService) Export(ctx context.Context) (*models.ExportResult, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dir := filepath.Join(s.exportDir,
		fmt.Sprintf("export-%s-%s", now.Format("2006-01-02"), uuid.NewString()[:8]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	files := []struct {
		name string
		data interface{}
	}{
		{"travels.json", snap.travels},
		{"participants.json", snap.participants},
		{"finances.json", snap.finances},
		{"contacts.json", snap.contacts},
		{"summary.json", jsonObject{
			"exportDate": now.Format(time.RFC3339),
			"counts": jsonObject{
				"travels":      len(snap.travels),
				"participants": len(snap.participants),
				"finances":     len(snap.finances),
				"contacts":     len(snap.contacts),
			},
		}},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := writeJSON(filepath.Join(dir, f.name), f.data); err != nil {
			return nil, err
		}
		written = append(written, f.name)
	}

	utils.SafeInfo("database exported to %s", dir)
	return &models.ExportResult{
		Message:    "Database exported successfully",
		ExportPath: dir,
		Files:      written,
	}, nil
}

type jsonObject = map[string]interface{}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ExportCSV writes <entity>.csv into the export root and returns its path.
func (s *AdminService) ExportCSV(ctx context.Context, entity string) (string, error) {
	header, rows, err := s.csvRows(ctx, entity)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", ErrNoData
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(s.exportDir, entity+".csv")
	f, err := s.create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := utils.WriteCSV(f, header, rows); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	utils.SafeInfo("%s exported to %s", entity, path)
	return path, nil
}

func (s *AdminService) csvRows(ctx context.Context, entity string) ([]string, [][]interface{}, error) {
	switch entity {
	case "travels":
		travels, err := s.travels.List(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("list travels: %w", err)
		}
		rows := make([][]interface{}, 0, len(travels))
		for _, t := range travels {
			rows = append(rows, []interface{}{
				t.ID, t.Name, t.Description, t.StartDate, t.EndDate, t.Location,
				t.TravelAgency, t.Commission, t.TotalFee, t.Status, t.CreatedAt, t.UpdatedAt,
			})
		}
		return []string{"id", "name", "description", "startDate", "endDate", "location",
			"travelAgency", "commission", "totalFee", "status", "createdAt", "updatedAt"}, rows, nil

	case "participants":
		participants, err := s.participants.List(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("list participants: %w", err)
		}
		rows := make([][]interface{}, 0, len(participants))
		for _, p := range participants {
			rows = append(rows, []interface{}{
				p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.TravelID,
				p.AmountPaid, p.Status, p.Notes, p.CreatedAt, p.UpdatedAt,
			})
		}
		return []string{"id", "firstName", "lastName", "email", "phone", "travelId",
			"amountPaid", "status", "notes", "createdAt", "updatedAt"}, rows, nil

	case "finances":
		finances, err := s.finances.List(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("list finances: %w", err)
		}
		rows := make([][]interface{}, 0, len(finances))
		for _, f := range finances {
			rows = append(rows, []interface{}{
				f.ID, f.Type, f.Category, f.Amount, f.Date, f.Description,
				f.TravelID, f.CreatedAt, f.UpdatedAt,
			})
		}
		return []string{"id", "type", "category", "amount", "date", "description",
			"travelId", "createdAt", "updatedAt"}, rows, nil

	case "contacts":
		contacts, err := s.contacts.List(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("list contacts: %w", err)
		}
		rows := make([][]interface{}, 0, len(contacts))
		for _, c := range contacts {
			rows = append(rows, []interface{}{
				c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Organization,
				c.Role, c.Notes, c.CreatedAt, c.UpdatedAt,
			})
		}
		return []string{"id", "firstName", "lastName", "email", "phone", "organization",
			"role", "notes", "createdAt", "updatedAt"}, rows, nil
	}

	return nil, nil, invalid("Invalid entity type")
}

// ============================================================================
// SEEDING
// ============================================================================

// Seed wipes and reloads the database when secret matches SEED_SECRET.
func (s *AdminService) Seed(ctx context.Context, secret string) error {
	if s.seedSecret == "" {
		return fmt.Errorf("SEED_SECRET: %w", ErrNotConfigured)
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.seedSecret)) != 1 {
		utils.SafeWarn("seed attempt with invalid secret")
		return ErrInvalidSecret
	}

	if err := s.seeder.Seed(ctx); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	utils.SafeInfo("database seeded")
	s.notifier.Notify("database", "seeded", 0)
	return nil
}
