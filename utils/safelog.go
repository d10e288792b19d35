// utils/safelog.go
// ============================================================================
// SAFE LOGGING - Masks personal and financial data in production
// ============================================================================
// Participants and contacts carry emails and phone numbers, the ledger carries
// amounts. In production every helper below runs its message through
// MaskString before it reaches the log.
// ============================================================================

package utils

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

// ============================================================================
// CONFIGURATION
// ============================================================================

var (
	// IsProduction turns masking on.
	IsProduction = false

	// LogLevel filters output (DEBUG, INFO, WARN, ERROR).
	LogLevel = LogLevelInfo
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// ConfigureLogging applies the loaded configuration. It must run after the
// .env file has been read so that values defined there take effect.
func ConfigureLogging(production bool, level string) {
	IsProduction = production
	LogLevel = ParseLogLevel(level)
}

// ParseLogLevel maps a LOG_LEVEL value onto a level, defaulting to INFO.
func ParseLogLevel(level string) int {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// ============================================================================
// MASKING PATTERNS
// ============================================================================

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Amounts followed by a currency
	amountWithCurrencyRegex = regexp.MustCompile(`\b\d+([.,]\d{1,2})?\s*(€|EUR|CHF|GBP|USD|£|\$)`)

	// International phone numbers as stored on participants and contacts
	phoneRegex = regexp.MustCompile(`\+\d{1,3}[\s.-]?\d{2,4}([\s.-]?\d{2,4}){1,3}`)

	cardRegex = regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`)

	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// ============================================================================
// MASKING
// ============================================================================

// MaskString hides sensitive data in input when running in production.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}

	result := input
	result = emailRegex.ReplaceAllString(result, "***@***.***")
	result = cardRegex.ReplaceAllString(result, "****-****-****-****")
	result = phoneRegex.ReplaceAllString(result, "+** *** ***")
	result = amountWithCurrencyRegex.ReplaceAllString(result, "***")
	result = uuidRegex.ReplaceAllStringFunc(result, shortenUUID)

	return result
}

func shortenUUID(uuid string) string {
	if len(uuid) > 8 {
		return uuid[:8] + "..."
	}
	return "***"
}

// MaskAmount hides a ledger amount.
func MaskAmount(amount float64) string {
	if IsProduction {
		return "***"
	}
	return fmt.Sprintf("%.2f", amount)
}

func MaskEmail(email string) string {
	if !IsProduction {
		return email
	}
	return "***@***.***"
}

// ============================================================================
// LEVELED LOGGING
// ============================================================================

func SafeLog(format string, args ...interface{}) {
	log.Print(MaskString(fmt.Sprintf(format, args...)))
}

// SafeDebug logs only when LOG_LEVEL=DEBUG.
func SafeDebug(format string, args ...interface{}) {
	if LogLevel > LogLevelDebug {
		return
	}
	log.Printf("[DEBUG] %s", MaskString(fmt.Sprintf(format, args...)))
}

func SafeInfo(format string, args ...interface{}) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Printf("[INFO] %s", MaskString(fmt.Sprintf(format, args...)))
}

func SafeWarn(format string, args ...interface{}) {
	if LogLevel > LogLevelWarn {
		return
	}
	log.Printf("[WARN] %s", MaskString(fmt.Sprintf(format, args...)))
}

// SafeError is never filtered.
func SafeError(format string, args ...interface{}) {
	log.Printf("[ERROR] %s", MaskString(fmt.Sprintf(format, args...)))
}

// ============================================================================
// DOMAIN LOGGING
// ============================================================================

// LogTravelAction records a write on a travel, participant or contact.
func LogTravelAction(action string, entity string, id uint, userID uint) {
	log.Printf("[Travel] %s - %s: %d User: %d", action, entity, id, userID)
}

// LogLedgerAction records a finance write without exposing the amount.
func LogLedgerAction(action string, financeID uint, kind string, amount float64) {
	log.Printf("[Ledger] %s - Finance: %d Type: %s Amount: %s",
		action,
		financeID,
		kind,
		MaskAmount(amount))
}

func LogAuthAction(action string, username string, success bool) {
	status := "SUCCESS"
	if !success {
		status = "FAILED"
	}
	log.Printf("[Auth] %s - User: %s Status: %s", action, MaskString(username), status)
}

// LogAPIRequest logs one served request.
func LogAPIRequest(requestID string, method string, path string, userID uint, statusCode int, duration string) {
	log.Printf("[API] %s %s %s - User: %d Status: %d Duration: %s",
		shortenUUID(requestID),
		method,
		MaskString(path),
		userID,
		statusCode,
		duration)
}

func LogWebSocket(action string, userID uint, sessions int) {
	log.Printf("[WS] %s - User: %d Sessions: %d", action, userID, sessions)
}

// ============================================================================
// STARTUP
// ============================================================================

func GetEnvMode() string {
	if IsProduction {
		return "production"
	}
	return "development"
}

func LogStartup(appName string, version string, port string) {
	log.Printf("🚀 %s v%s starting...", appName, version)
	log.Printf("   Mode: %s", GetEnvMode())
	log.Printf("   Port: %s", port)
	log.Printf("   Log Level: %d", LogLevel)
	if IsProduction {
		log.Printf("   ⚠️  Production mode: Sensitive data will be masked in logs")
	}
}
