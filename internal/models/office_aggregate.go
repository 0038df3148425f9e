package models

import "time"

// OfficeAggregate is the per-office rollup for one baseline, recomputed in
// full on every import.
type OfficeAggregate struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BaselineID          uint      `gorm:"column:baseline_id;index;not null" json:"baseline_id"`
	Office              string    `gorm:"column:office;not null" json:"office"`
	CurrentMonthTotal   float64   `gorm:"column:current_month_total;not null;default:0" json:"current_month_total"`
	FollowingMonthTotal float64   `gorm:"column:following_month_total;not null;default:0" json:"following_month_total"`
	GrandTotal          float64   `gorm:"column:grand_total;not null;default:0" json:"grand_total"`
	AgentCount          int       `gorm:"column:agent_count;not null;default:0" json:"agent_count"`
	ImportDate          time.Time `gorm:"column:import_date;not null" json:"import_date"`
	CreatedAt           time.Time `json:"created_at"`
}

func (OfficeAggregate) TableName() string {
	return "office_aggregates"
}
