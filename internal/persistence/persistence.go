package persistence

import (
	"encoding/json"
	"log"

	"restoflow-backend/internal/database"
	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"

	"gorm.io/gorm/clause"
)

// Save writes the durable subset of the snapshot into the single state
// row. Last write wins; a failed save is logged and never fails the
// intent that triggered it.
func Save(snap pos.Snapshot) {
	data, err := json.Marshal(snap.Persisted())
	if err != nil {
		log.Printf("[WARN] snapshot marshal failed: %v", err)
		return
	}

	rec := models.StateRecord{ID: models.StateRecordID, Data: string(data)}
	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		log.Printf("[WARN] snapshot save failed: %v", err)
	}
}

// Load restores the last saved snapshot, or a freshly seeded one when
// no record exists or the stored data cannot be read.
func Load() pos.Snapshot {
	var rec models.StateRecord
	if err := database.DB.First(&rec, models.StateRecordID).Error; err != nil {
		log.Println("no persisted state, starting from seed data")
		return pos.NewSnapshot()
	}

	var persisted pos.PersistedState
	if err := json.Unmarshal([]byte(rec.Data), &persisted); err != nil {
		log.Printf("[WARN] persisted state unreadable, starting from seed data: %v", err)
		return pos.NewSnapshot()
	}
	return pos.Restore(persisted)
}
