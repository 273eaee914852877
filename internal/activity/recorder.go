package activity

import (
	"context"
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/db/models"
	"github.com/Christian112b/costanzo-backend/pkg/logger"
	"gorm.io/gorm"
)

// Action tags used by the settlement flow.
const (
	ActionPaymentCreated = "CREACION_PAGO"
	ActionPaymentError   = "create_payment_error"
)

// Repository appends audit rows.
type Repository interface {
	Insert(ctx context.Context, entry *models.ActivityLogEntry) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided DB handle.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, entry *models.ActivityLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Recorder writes audit entries without ever failing the caller: a write
// error is logged and swallowed.
type Recorder struct {
	repo Repository
	logg *logger.Logger
	now  func() time.Time
}

// NewRecorder builds the best-effort recorder.
func NewRecorder(repo Repository, logg *logger.Logger) *Recorder {
	return &Recorder{repo: repo, logg: logg, now: time.Now}
}

// Record appends one audit entry.
func (r *Recorder) Record(ctx context.Context, userID *int64, action, description, originIP string) {
	if r == nil || r.repo == nil {
		return
	}
	entry := &models.ActivityLogEntry{
		UserID:      userID,
		Action:      action,
		Description: description,
		OccurredAt:  r.now(),
		OriginIP:    originIP,
	}
	if err := r.repo.Insert(ctx, entry); err != nil && r.logg != nil {
		r.logg.Warn(r.logg.WithField(ctx, "activity_error", err.Error()), "activity log write failed")
	}
}
