package snapshots

import (
	"context"
	"errors"
	"strings"
	"time"

	"pdp-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrNameRequired rejects CreateBaseline with a blank name.
	ErrNameRequired = errors.New("baseline name is required")
	// ErrBaselineNotFound is returned by lookups for an unknown baseline id.
	ErrBaselineNotFound = errors.New("baseline not found")
	// ErrAggregateNotFound means the baseline exists but has never been imported into.
	ErrAggregateNotFound = errors.New("company aggregate not found")
	// ErrNoBaselines means the store is empty.
	ErrNoBaselines = errors.New("no baselines found")
)

// Service is the snapshot store: baselines plus their agent records and
// office/company rollups, backed by one GORM handle.
type Service struct {
	DB *gorm.DB
}

// CreateBaseline creates an immutable named baseline dated today.
func (s *Service) CreateBaseline(ctx context.Context, name, description string) (*models.Baseline, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	b := models.Baseline{
		BaselineDate: truncateToDay(time.Now()),
		Name:         name,
		Description:  description,
	}
	if err := s.DB.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, err
	}
	log.Info().Uint("baseline_id", b.ID).Str("name", name).Msg("Created baseline")
	return &b, nil
}

// ImportSnapshot writes all three aggregation levels for a baseline in one
// transaction: either every row appears or none do. Re-importing into the
// same baseline replaces the previous snapshot rather than appending to it.
// The source provenance blob is stamped onto the baseline in the same
// transaction; it is the only baseline field an import may touch.
func (s *Service) ImportSnapshot(ctx context.Context, baselineID uint, records []models.AgentRecord, offices []models.OfficeAggregate, company models.CompanyAggregate, source datatypes.JSON) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var baseline models.Baseline
		if err := tx.Where("id = ?", baselineID).First(&baseline).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBaselineNotFound
			}
			return err
		}

		// Replace semantics: drop any prior snapshot for this baseline.
		if err := tx.Where("baseline_id = ?", baselineID).Delete(&models.AgentRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("baseline_id = ?", baselineID).Delete(&models.OfficeAggregate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("baseline_id = ?", baselineID).Delete(&models.CompanyAggregate{}).Error; err != nil {
			return err
		}

		for i := range records {
			records[i].ID = 0
			records[i].BaselineID = baselineID
		}
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}

		for i := range offices {
			offices[i].ID = 0
			offices[i].BaselineID = baselineID
		}
		if len(offices) > 0 {
			if err := tx.Create(&offices).Error; err != nil {
				return err
			}
		}

		company.ID = 0
		company.BaselineID = baselineID
		if err := tx.Create(&company).Error; err != nil {
			return err
		}

		if len(source) > 0 {
			if err := tx.Model(&baseline).Update("source", source).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetBaselines returns all baselines, most recent baseline date first.
func (s *Service) GetBaselines(ctx context.Context) ([]models.Baseline, error) {
	var baselines []models.Baseline
	if err := s.DB.WithContext(ctx).Order("baseline_date DESC, id DESC").Find(&baselines).Error; err != nil {
		return nil, err
	}
	return baselines, nil
}

// GetBaseline fetches one baseline by id.
func (s *Service) GetBaseline(ctx context.Context, id uint) (*models.Baseline, error) {
	var b models.Baseline
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBaselineNotFound
		}
		return nil, err
	}
	return &b, nil
}

// GetMostRecentBaseline returns the latest-created baseline.
func (s *Service) GetMostRecentBaseline(ctx context.Context) (*models.Baseline, error) {
	var b models.Baseline
	if err := s.DB.WithContext(ctx).Order("created_at DESC, id DESC").First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoBaselines
		}
		return nil, err
	}
	return &b, nil
}

// GetCompanyAggregate returns the single company rollup for a baseline.
func (s *Service) GetCompanyAggregate(ctx context.Context, baselineID uint) (*models.CompanyAggregate, error) {
	var agg models.CompanyAggregate
	if err := s.DB.WithContext(ctx).Where("baseline_id = ?", baselineID).First(&agg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAggregateNotFound
		}
		return nil, err
	}
	return &agg, nil
}

// GetOfficeAggregates returns a baseline's office rollups, largest grand
// total first.
func (s *Service) GetOfficeAggregates(ctx context.Context, baselineID uint) ([]models.OfficeAggregate, error) {
	var offices []models.OfficeAggregate
	if err := s.DB.WithContext(ctx).Where("baseline_id = ?", baselineID).Order("grand_total DESC").Find(&offices).Error; err != nil {
		return nil, err
	}
	return offices, nil
}

// GetTopAgents returns up to n agent records ordered by total promised.
func (s *Service) GetTopAgents(ctx context.Context, baselineID uint, n int) ([]models.AgentRecord, error) {
	var agents []models.AgentRecord
	if err := s.DB.WithContext(ctx).Where("baseline_id = ?", baselineID).Order("total_promised DESC").Limit(n).Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

// DeleteBaseline removes a baseline and everything it owns in one transaction.
func (s *Service) DeleteBaseline(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var baseline models.Baseline
		if err := tx.Where("id = ?", id).First(&baseline).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBaselineNotFound
			}
			return err
		}
		if err := tx.Where("baseline_id = ?", id).Delete(&models.AgentRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("baseline_id = ?", id).Delete(&models.OfficeAggregate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("baseline_id = ?", id).Delete(&models.CompanyAggregate{}).Error; err != nil {
			return err
		}
		return tx.Delete(&baseline).Error
	})
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
