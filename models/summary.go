package models

// FinancialSummary is the ledger total over a set of finance entries.
type FinancialSummary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
	Count    int     `json:"count"`
}

// TravelSummary rolls up the participants and ledger lines of one travel.
type TravelSummary struct {
	Travel                TravelRef `json:"travel"`
	Participants          int       `json:"participants"`
	ConfirmedParticipants int       `json:"confirmedParticipants"`
	AmountPaid            float64   `json:"amountPaid"`
	Income                float64   `json:"income"`
	Expenses              float64   `json:"expenses"`
	Balance               float64   `json:"balance"`
	Count                 int       `json:"count"`
}

type EntityCounts struct {
	Travels      int64 `json:"travels"`
	Participants int64 `json:"participants"`
	Finances     int64 `json:"finances"`
	Contacts     int64 `json:"contacts"`
	Users        int64 `json:"users"`
}

type LedgerTotals struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
}

type MemoryInfo struct {
	Alloc uint64 `json:"alloc"`
	Sys   uint64 `json:"sys"`
}

type SystemInfo struct {
	Platform   string     `json:"platform"`
	Uptime     float64    `json:"uptime"`
	Goroutines int        `json:"goroutines"`
	Memory     MemoryInfo `json:"memory"`
}

type SystemStats struct {
	Counts   EntityCounts `json:"counts"`
	Finances LedgerTotals `json:"finances"`
	System   SystemInfo   `json:"system"`
}

// ExportResult describes a JSON export written to disk.
type ExportResult struct {
	Message    string   `json:"message"`
	ExportPath string   `json:"exportPath"`
	Files      []string `json:"files"`
}
