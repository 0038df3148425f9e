package models

import "time"

// AgentRecord is one normalized agent row from an imported report. It belongs
// to exactly one Baseline; deleting the baseline cascades to its records.
type AgentRecord struct {
	ID                     uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BaselineID             uint    `gorm:"column:baseline_id;index;not null" json:"baseline_id"`
	AgentName              string  `gorm:"column:agent_name;not null" json:"agent_name"`
	Office                 string  `gorm:"column:office;not null;default:Unknown" json:"office"`
	CurrentMonthPromised   float64 `gorm:"column:current_month_promised;not null;default:0" json:"current_month_promised"`
	FollowingMonthPromised float64 `gorm:"column:following_month_promised;not null;default:0" json:"following_month_promised"`
	// TotalPromised is always current + following; stored redundantly so
	// top-agent queries can order on a single column.
	TotalPromised float64   `gorm:"column:total_promised;not null;default:0" json:"total_promised"`
	ImportDate    time.Time `gorm:"column:import_date;not null" json:"import_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func (AgentRecord) TableName() string {
	return "agent_records"
}
