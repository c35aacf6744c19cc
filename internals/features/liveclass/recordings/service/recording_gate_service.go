package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	entitlement "kelasku_backend/internals/features/liveclass/entitlement/service"
	sessionModel "kelasku_backend/internals/features/liveclass/sessions/model"
	"kelasku_backend/internals/features/liveclass/recordings/model"
)

// RecordingGateService: gate akses rekaman. Aturannya numpang ke resolver
// sesi induknya — rekaman yang requires_purchase pakai entitlement sesi,
// yang tidak hanya butuh is_published.
type RecordingGateService struct {
	DB          *gorm.DB
	Entitlement *entitlement.EntitlementService

	Now func() time.Time
}

func NewRecordingGateService(db *gorm.DB) *RecordingGateService {
	return &RecordingGateService{
		DB:          db,
		Entitlement: entitlement.NewEntitlementService(db),
		Now:         time.Now,
	}
}

// Resolve memutuskan bolehkah user menonton rekaman. Rekaman unpublished
// diperlakukan tidak ada (ErrNotFound, bukan 403 — jangan bocorkan
// keberadaannya).
func (s *RecordingGateService) Resolve(userID, recordingID uuid.UUID) (*model.LiveSessionRecordingModel, entitlement.Decision, error) {
	var rec model.LiveSessionRecordingModel
	if err := s.DB.First(&rec, "live_session_recording_id = ?", recordingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entitlement.Decision{}, fmt.Errorf("rekaman %s: %w", recordingID, constants.ErrNotFound)
		}
		return nil, entitlement.Decision{}, fmt.Errorf("baca rekaman: %w", constants.ErrTransientStorage)
	}

	if !rec.LiveSessionRecordingIsPublished {
		return nil, entitlement.Decision{}, fmt.Errorf("rekaman %s: %w", recordingID, constants.ErrNotFound)
	}

	if !rec.LiveSessionRecordingRequiresPurchase {
		return &rec, entitlement.Decision{Granted: true, Reason: entitlement.ReasonFree}, nil
	}

	decision, _, err := s.Entitlement.Resolve(userID, rec.LiveSessionRecordingSessionID)
	if err != nil {
		return nil, entitlement.Decision{}, err
	}
	if !decision.Granted {
		return nil, decision, constants.ErrNotEntitled
	}
	return &rec, decision, nil
}

// RegisterView menaikkan view_count atomik di DB. Dipanggil hanya setelah
// gate meloloskan — bukan di list/detail.
func (s *RecordingGateService) RegisterView(recordingID uuid.UUID) error {
	return s.DB.Model(&model.LiveSessionRecordingModel{}).
		Where("live_session_recording_id = ?", recordingID).
		UpdateColumn("live_session_recording_view_count",
			gorm.Expr("live_session_recording_view_count + 1")).Error
}

// ListForSession: rekaman published milik satu sesi (tanpa video_url).
func (s *RecordingGateService) ListForSession(sessionID uuid.UUID) ([]model.LiveSessionRecordingModel, error) {
	var sess sessionModel.LiveSessionModel
	if err := s.DB.First(&sess, "live_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sesi %s: %w", sessionID, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("baca sesi: %w", constants.ErrTransientStorage)
	}

	var items []model.LiveSessionRecordingModel
	if err := s.DB.
		Where("live_session_recording_session_id = ? AND live_session_recording_is_published = TRUE",
			sessionID).
		Order("live_session_recording_created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("baca rekaman: %w", constants.ErrTransientStorage)
	}
	return items, nil
}
