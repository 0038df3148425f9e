package models

import "time"

// CompanyAggregate is the company-wide rollup for one baseline. At most one
// row exists per baseline.
type CompanyAggregate struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BaselineID          uint      `gorm:"column:baseline_id;uniqueIndex;not null" json:"baseline_id"`
	TotalCurrentMonth   float64   `gorm:"column:total_current_month;not null;default:0" json:"total_current_month"`
	TotalFollowingMonth float64   `gorm:"column:total_following_month;not null;default:0" json:"total_following_month"`
	GrandTotal          float64   `gorm:"column:grand_total;not null;default:0" json:"grand_total"`
	TotalAgents         int       `gorm:"column:total_agents;not null;default:0" json:"total_agents"`
	TotalOffices        int       `gorm:"column:total_offices;not null;default:0" json:"total_offices"`
	ImportDate          time.Time `gorm:"column:import_date;not null" json:"import_date"`
	CreatedAt           time.Time `json:"created_at"`
}

func (CompanyAggregate) TableName() string {
	return "company_aggregates"
}
