package repository

import (
	"errors"
	"strings"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/utils"
	"gorm.io/gorm"
)

// translate maps gorm sentinel errors onto the package's own.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(err.Error(), "duplicate key"):
		return ErrDuplicate
	default:
		utils.SafeDebug("repository: untranslated database error: %v", err)
		return err
	}
}

// withTravel projects the owning travel's name next to each row of table so
// the {id, name} reference can be built without a second query.
func withTravel(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Table(table).
			Select(table + ".*, travels.name AS travel_name").
			Joins("LEFT JOIN travels ON travels.id = " + table + ".travel_id")
	}
}

func travelRef(id *uint, name *string) *models.TravelRef {
	if id == nil || *id == 0 || name == nil {
		return nil
	}
	return &models.TravelRef{ID: *id, Name: *name}
}

// deleteByID removes one row and reports ErrNotFound when nothing matched.
func deleteByID(db *gorm.DB, model interface{}, id uint) error {
	res := db.Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// likePattern builds a case-insensitive substring pattern with LIKE
// wildcards in term escaped.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}
