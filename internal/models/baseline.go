package models

import (
	"time"

	"gorm.io/datatypes"
)

// Baseline is a named, dated snapshot of promised-payment data taken at one
// import event. Immutable after creation.
type Baseline struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BaselineDate time.Time      `gorm:"column:baseline_date;not null" json:"baseline_date"`
	Name         string         `gorm:"column:baseline_name;not null" json:"baseline_name"`
	Description  string         `gorm:"column:description" json:"description"`
	Source       datatypes.JSON `gorm:"column:source" json:"source,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (Baseline) TableName() string {
	return "baselines"
}
