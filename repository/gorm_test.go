package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/LovationAdmin/travel-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type capturedStmt struct {
	sql  string
	vars []interface{}
}

// dryRunDB renders statements against the Postgres dialect without a server
// and records each one.
func dryRunDB(t *testing.T) (*gorm.DB, *[]capturedStmt) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=travel dbname=travel sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	var stmts []capturedStmt
	record := func(tx *gorm.DB) {
		stmts = append(stmts, capturedStmt{sql: tx.Statement.SQL.String(), vars: tx.Statement.Vars})
	}
	if err := db.Callback().Query().After("gorm:query").Register("test:record_query", record); err != nil {
		t.Fatalf("register query callback: %v", err)
	}
	if err := db.Callback().Update().After("gorm:update").Register("test:record_update", record); err != nil {
		t.Fatalf("register update callback: %v", err)
	}
	return db, &stmts
}

func lastSQL(t *testing.T, stmts *[]capturedStmt) capturedStmt {
	t.Helper()
	if len(*stmts) == 0 {
		t.Fatalf("no statement was rendered")
	}
	return (*stmts)[len(*stmts)-1]
}

func TestParticipantQueriesJoinTravel(t *testing.T) {
	db, stmts := dryRunDB(t)
	repo := NewParticipantRepo(db)
	ctx := context.Background()

	if _, err := repo.Get(ctx, 3); err != nil {
		t.Fatalf("get: %v", err)
	}
	got := lastSQL(t, stmts).sql
	for _, want := range []string{
		"SELECT participants.*, travels.name AS travel_name",
		"LEFT JOIN travels ON travels.id = participants.travel_id",
		"participants.id = $1",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}

	if _, err := repo.ListByTravel(ctx, 5); err != nil {
		t.Fatalf("list by travel: %v", err)
	}
	got = lastSQL(t, stmts).sql
	if !strings.Contains(got, "participants.travel_id = $1") || !strings.Contains(got, "ORDER BY participants.id") {
		t.Fatalf("unexpected list query %q", got)
	}
}

func TestFinanceQueriesJoinTravel(t *testing.T) {
	db, stmts := dryRunDB(t)
	repo := NewFinanceRepo(db)

	if _, err := repo.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	got := lastSQL(t, stmts).sql
	if !strings.Contains(got, "LEFT JOIN travels ON travels.id = finances.travel_id") ||
		!strings.Contains(got, "travels.name AS travel_name") {
		t.Fatalf("unexpected finance query %q", got)
	}
}

func TestFinanceUpdateWritesNullTravel(t *testing.T) {
	db, stmts := dryRunDB(t)
	repo := NewFinanceRepo(db)

	entry := &models.Finance{ID: 7, Type: models.FinanceTypeExpense, Category: "Office", Amount: 500}
	if err := repo.Update(context.Background(), entry); err != nil {
		t.Fatalf("update: %v", err)
	}
	stmt := lastSQL(t, stmts)
	if !strings.HasPrefix(stmt.sql, `UPDATE "finances" SET`) || !strings.Contains(stmt.sql, `"travel_id"=`) {
		t.Fatalf("expected travel_id in the SET list, got %q", stmt.sql)
	}

	var cleared bool
	for _, v := range stmt.vars {
		if p, ok := v.(*uint); ok && p == nil {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected a NULL travel_id among %v", stmt.vars)
	}
}

func TestContactSearchEscapesWildcards(t *testing.T) {
	db, stmts := dryRunDB(t)

	if _, err := NewContactRepo(db).Search(context.Background(), "50%_off"); err != nil {
		t.Fatalf("search: %v", err)
	}
	stmt := lastSQL(t, stmts)
	if strings.Count(stmt.sql, "ILIKE") != 4 {
		t.Fatalf("expected four ILIKE clauses in %q", stmt.sql)
	}
	if len(stmt.vars) != 4 || stmt.vars[0] != `%50\%\_off%` {
		t.Fatalf("unexpected search args %v", stmt.vars)
	}
}

func TestTranslate(t *testing.T) {
	other := errors.New("connection reset")
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"not found", fmt.Errorf("take: %w", gorm.ErrRecordNotFound), ErrNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, ErrDuplicate},
		{"driver duplicate", errors.New(`pq: duplicate key value violates unique constraint "users_username_key"`), ErrDuplicate},
		{"other", other, other},
	}
	for _, tt := range tests {
		if got := translate(tt.in); !errors.Is(got, tt.want) && got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTravelRef(t *testing.T) {
	id, name := uint(4), "Alps"
	zero := uint(0)

	if ref := travelRef(&id, &name); ref == nil || ref.ID != 4 || ref.Name != "Alps" {
		t.Fatalf("unexpected ref %+v", ref)
	}
	if travelRef(nil, &name) != nil || travelRef(&zero, &name) != nil || travelRef(&id, nil) != nil {
		t.Fatalf("missing travel must give a nil ref")
	}
}
