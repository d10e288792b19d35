package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/repository/repotest"
)

type fakeSeeder struct {
	calls int
	err   error
}

func (f *fakeSeeder) Seed(context.Context) error {
	f.calls++
	return f.err
}

func newAdminService(store *repotest.Store, seeder Seeder, cfg AdminConfig) *AdminService {
	return NewAdminService(
		store.Travels(), store.Participants(), store.Finances(), store.Contacts(), store.Users(),
		seeder, nil, cfg,
	)
}

func TestAdminSeedSecret(t *testing.T) {
	ctx := context.Background()

	seeder := &fakeSeeder{}
	unset := newAdminService(repotest.NewStore(), seeder, AdminConfig{})
	if err := unset.Seed(ctx, "anything"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected not configured, got %v", err)
	}

	svc := newAdminService(repotest.NewStore(), seeder, AdminConfig{SeedSecret: "s3cret"})
	if err := svc.Seed(ctx, "wrong"); !errors.Is(err, ErrInvalidSecret) {
		t.Fatalf("expected invalid secret, got %v", err)
	}
	if seeder.calls != 0 {
		t.Fatalf("seeder must not run without the right secret")
	}

	if err := svc.Seed(ctx, "s3cret"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if seeder.calls != 1 {
		t.Fatalf("expected one seeding run, got %d", seeder.calls)
	}
}

func TestAdminStats(t *testing.T) {
	store := repotest.NewStore()
	ctx := context.Background()
	travel := newTravel(t, store, "Alps", 2000)
	financeSvc := NewFinanceService(store.Finances(), store.Travels(), nil)
	for _, req := range []models.CreateFinanceRequest{
		{Type: models.FinanceTypeIncome, Category: "Commission", Amount: f64(2000), Description: "c", TravelID: u(travel.ID)},
		{Type: models.FinanceTypeExpense, Category: "Office", Amount: f64(500), Description: "rent"},
	} {
		if _, err := financeSvc.Create(ctx, req); err != nil {
			t.Fatalf("create finance: %v", err)
		}
	}

	stats, err := newAdminService(store, &fakeSeeder{}, AdminConfig{}).Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Counts.Travels != 1 || stats.Counts.Finances != 2 || stats.Counts.Participants != 0 {
		t.Fatalf("unexpected counts %+v", stats.Counts)
	}
	want := models.LedgerTotals{TotalIncome: 2000, TotalExpenses: 500, Balance: 1500}
	if stats.Finances != want {
		t.Fatalf("totals = %+v, want %+v", stats.Finances, want)
	}
	if stats.System.Platform == "" || stats.System.Memory.Sys == 0 {
		t.Fatalf("missing system info %+v", stats.System)
	}
}

func TestAdminExportWritesJSONFiles(t *testing.T) {
	store := repotest.NewStore()
	newTravel(t, store, "Alps", 2000)
	dir := t.TempDir()

	result, err := newAdminService(store, &fakeSeeder{}, AdminConfig{ExportDir: dir}).Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(result.ExportPath), "export-") {
		t.Fatalf("unexpected export path %s", result.ExportPath)
	}
	if len(result.Files) != 5 {
		t.Fatalf("expected 5 files, got %v", result.Files)
	}

	data, err := os.ReadFile(filepath.Join(result.ExportPath, "summary.json"))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	var summary struct {
		Counts map[string]int `json:"counts"`
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Counts["travels"] != 1 || summary.Counts["contacts"] != 0 {
		t.Fatalf("unexpected counts %v", summary.Counts)
	}

	data, err = os.ReadFile(filepath.Join(result.ExportPath, "travels.json"))
	if err != nil {
		t.Fatalf("read travels: %v", err)
	}
	if !strings.Contains(string(data), `"travelAgency": "CityEscapes"`) {
		t.Fatalf("travels.json should use camelCase fields:\n%s", data)
	}
}

func TestAdminExportCSV(t *testing.T) {
	store := repotest.NewStore()
	ctx := context.Background()
	dir := t.TempDir()
	svc := newAdminService(store, &fakeSeeder{}, AdminConfig{ExportDir: dir})

	if _, err := svc.ExportCSV(ctx, "bookings"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for unknown entity, got %v", err)
	}
	if _, err := svc.ExportCSV(ctx, "contacts"); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected no data, got %v", err)
	}

	contactSvc := NewContactService(store.Contacts(), nil)
	if _, err := contactSvc.Create(ctx, models.CreateContactRequest{
		FirstName: "Hans", LastName: "Muller", Email: "hans@snowtreks.com", Phone: "+41 987 654 321",
		Organization: "SnowTreks", Role: "Sales Manager", Notes: `Says "hi"`,
	}); err != nil {
		t.Fatalf("create contact: %v", err)
	}

	path, err := svc.ExportCSV(ctx, "contacts")
	if err != nil {
		t.Fatalf("export csv: %v", err)
	}
	if path != filepath.Join(dir, "contacts.csv") {
		t.Fatalf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "id,firstName,lastName,email") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], `"Says ""hi"""`) {
		t.Fatalf("quotes not doubled in %q", lines[1])
	}
}

type failingCloser struct {
	strings.Builder
}

func (*failingCloser) Close() error { return errors.New("disk full") }

func TestAdminExportCSVReportsCloseError(t *testing.T) {
	store := repotest.NewStore()
	ctx := context.Background()
	newTravel(t, store, "Alps", 2000)

	svc := newAdminService(store, &fakeSeeder{}, AdminConfig{ExportDir: t.TempDir()})
	out := &failingCloser{}
	svc.create = func(string) (io.WriteCloser, error) { return out, nil }

	if _, err := svc.ExportCSV(ctx, "travels"); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected close error to surface, got %v", err)
	}
	if !strings.Contains(out.String(), "Alps") {
		t.Fatalf("expected rows written before close, got %q", out.String())
	}
}
