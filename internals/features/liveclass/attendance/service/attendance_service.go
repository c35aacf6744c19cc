package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kelasku_backend/internals/configs"
	"kelasku_backend/internals/constants"
	"kelasku_backend/internals/features/liveclass/attendance/model"
	notifModel "kelasku_backend/internals/features/home/notifications/model"
	notification "kelasku_backend/internals/features/home/notifications/service"
	entitlement "kelasku_backend/internals/features/liveclass/entitlement/service"
	sessionModel "kelasku_backend/internals/features/liveclass/sessions/model"
)

// AttendanceService: tracker kehadiran + capacity guard. Join = resolver →
// guard → tulis baris, satu transaksi per percobaan; akses ke room TIDAK
// boleh diberikan sebelum tulisnya sukses.
type AttendanceService struct {
	DB          *gorm.DB
	Entitlement *entitlement.EntitlementService

	Now func() time.Time

	GraceMinutes int
	WriteRetries int
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{
		DB:           db,
		Entitlement:  entitlement.NewEntitlementService(db),
		Now:          time.Now,
		GraceMinutes: configs.AttendanceLateGraceMinutes,
		WriteRetries: configs.AttendanceWriteRetries,
	}
}

// RecordJoin mencatat join (idempoten per (sesi, user)). Urutan wajib:
// entitlement → capacity → tulis. Error storage di-retry terbatas; error
// domain (not entitled / full / invalid state) terminal.
func (s *AttendanceService) RecordJoin(userID, sessionID uuid.UUID, deviceInfo datatypes.JSON) (*model.LiveSessionAttendanceModel, error) {
	decision, sess, err := s.Entitlement.Resolve(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !decision.Granted {
		return nil, constants.ErrNotEntitled
	}
	if !sess.IsJoinable() {
		return nil, fmt.Errorf("sesi %s: %w", sess.LiveSessionStatus, constants.ErrInvalidState)
	}

	retries := s.WriteRetries
	if retries < 1 {
		retries = 1
	}

	var result *model.LiveSessionAttendanceModel
	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		result, lastErr = s.joinOnce(userID, sess, deviceInfo)
		if lastErr == nil {
			return result, nil
		}
		// error domain: terminal, jangan retry
		if errors.Is(lastErr, constants.ErrSessionFull) || errors.Is(lastErr, constants.ErrInvalidState) {
			if errors.Is(lastErr, constants.ErrSessionFull) {
				notification.Send(s.DB, userID, notifModel.NotificationKindSessionFull,
					"Sesi sudah penuh", map[string]interface{}{
						"session_id": sess.LiveSessionID,
					})
			}
			return nil, lastErr
		}
		log.Printf("[WARN] RecordJoin attempt %d/%d gagal (user=%s sesi=%s): %v",
			attempt, retries, userID, sess.LiveSessionID, lastErr)
	}

	return nil, fmt.Errorf("tulis attendance gagal setelah %d percobaan: %w", retries, constants.ErrTransientStorage)
}

// joinOnce: satu percobaan join dalam satu transaksi. Lock baris sesi dulu
// (FOR UPDATE) supaya cek kapasitas + insert attendance terserialisasi per
// sesi — dua joiner rebutan slot terakhir tidak bisa sama-sama lolos.
func (s *AttendanceService) joinOnce(userID uuid.UUID, sess *sessionModel.LiveSessionModel, deviceInfo datatypes.JSON) (*model.LiveSessionAttendanceModel, error) {
	var att model.LiveSessionAttendanceModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var locked sessionModel.LiveSessionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "live_session_id = ?", sess.LiveSessionID).Error; err != nil {
			return err
		}

		// 🔁 Sudah pernah join? (re-join idempoten, bukan error)
		var existing model.LiveSessionAttendanceModel
		findErr := tx.
			Where("live_session_attendance_session_id = ? AND live_session_attendance_user_id = ?",
				locked.LiveSessionID, userID).
			First(&existing).Error

		hasRow := findErr == nil
		if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// Capacity guard: hitung ULANG dari baris present (bukan cache).
		// Baris user sendiri yang sudah present tidak butuh slot baru.
		needsSlot := !hasRow || !existing.LiveSessionAttendanceIsPresent
		if needsSlot {
			if err := s.TryReserveSlot(tx, &locked); err != nil {
				return err
			}
		}

		now := s.Now()
		if hasRow {
			ApplyJoin(&existing, &locked, now, s.GraceMinutes)
			if deviceInfo != nil {
				existing.LiveSessionAttendanceDeviceInfo = deviceInfo
			}
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			att = existing
			return nil
		}

		fresh := model.LiveSessionAttendanceModel{
			LiveSessionAttendanceSessionID:  locked.LiveSessionID,
			LiveSessionAttendanceUserID:     userID,
			LiveSessionAttendanceDeviceInfo: deviceInfo,
		}
		ApplyJoin(&fresh, &locked, now, s.GraceMinutes)

		if err := tx.Create(&fresh).Error; err != nil {
			// 23505 = join pertama kebalap request kembar; update baris yang
			// menang, jangan duplikasi
			if isUniqueViolation(err) {
				var raced model.LiveSessionAttendanceModel
				if err := tx.
					Where("live_session_attendance_session_id = ? AND live_session_attendance_user_id = ?",
						locked.LiveSessionID, userID).
					First(&raced).Error; err != nil {
					return err
				}
				ApplyJoin(&raced, &locked, now, s.GraceMinutes)
				if err := tx.Save(&raced).Error; err != nil {
					return err
				}
				att = raced
				return nil
			}
			return err
		}
		att = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// TryReserveSlot: guard kapasitas. Caller WAJIB sudah memegang lock baris
// sesi di transaksi yang sama — di luar itu hitungannya bisa basi.
func (s *AttendanceService) TryReserveSlot(tx *gorm.DB, sess *sessionModel.LiveSessionModel) error {
	if sess.LiveSessionMaxParticipants == nil {
		return nil
	}

	var presentCount int64
	if err := tx.Model(&model.LiveSessionAttendanceModel{}).
		Where("live_session_attendance_session_id = ? AND live_session_attendance_is_present = TRUE",
			sess.LiveSessionID).
		Count(&presentCount).Error; err != nil {
		return err
	}

	if !HasFreeSlot(sess.LiveSessionMaxParticipants, presentCount) {
		return constants.ErrSessionFull
	}
	return nil
}

// RecordLeave menutup siklus kehadiran yang terbuka. Leave tanpa join (atau
// tanpa siklus terbuka) = ErrInvalidState, bukan durasi negatif.
func (s *AttendanceService) RecordLeave(userID, sessionID uuid.UUID) (*model.LiveSessionAttendanceModel, error) {
	var sess sessionModel.LiveSessionModel
	if err := s.DB.First(&sess, "live_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sesi %s: %w", sessionID, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("baca sesi: %w", constants.ErrTransientStorage)
	}

	var att model.LiveSessionAttendanceModel
	if err := s.DB.
		Where("live_session_attendance_session_id = ? AND live_session_attendance_user_id = ?",
			sessionID, userID).
		First(&att).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("belum pernah join sesi ini: %w", constants.ErrInvalidState)
		}
		return nil, fmt.Errorf("baca attendance: %w", constants.ErrTransientStorage)
	}

	if !ApplyLeave(&att, &sess, s.Now()) {
		return nil, fmt.Errorf("tidak ada siklus join yang terbuka: %w", constants.ErrInvalidState)
	}

	if err := s.DB.Save(&att).Error; err != nil {
		return nil, fmt.Errorf("simpan leave: %w", constants.ErrTransientStorage)
	}
	return &att, nil
}

// Excuse: pengecualian manual oleh staff — satu-satunya jalur selain
// join/leave user sendiri yang boleh menyentuh baris attendance.
func (s *AttendanceService) Excuse(staffID, userID, sessionID uuid.UUID, reason string) (*model.LiveSessionAttendanceModel, error) {
	var sess sessionModel.LiveSessionModel
	if err := s.DB.First(&sess, "live_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sesi %s: %w", sessionID, constants.ErrNotFound)
		}
		return nil, fmt.Errorf("baca sesi: %w", constants.ErrTransientStorage)
	}

	var att model.LiveSessionAttendanceModel
	err := s.DB.
		Where("live_session_attendance_session_id = ? AND live_session_attendance_user_id = ?",
			sessionID, userID).
		First(&att).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("baca attendance: %w", constants.ErrTransientStorage)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// user tidak pernah join — baris excused dibuat manual
		att = model.LiveSessionAttendanceModel{
			LiveSessionAttendanceSessionID: sessionID,
			LiveSessionAttendanceUserID:    userID,
		}
	}

	att.LiveSessionAttendanceStatus = model.AttendanceStatusExcused
	att.LiveSessionAttendanceExcuseReason = &reason
	att.LiveSessionAttendanceExcuseApprovedBy = &staffID
	att.LiveSessionAttendanceIsManual = true

	if err := s.DB.Save(&att).Error; err != nil {
		return nil, fmt.Errorf("simpan excuse: %w", constants.ErrTransientStorage)
	}
	return &att, nil
}

// SessionStats: agregasi murni di atas tabel attendance (read model).
type SessionStats struct {
	SessionID    uuid.UUID `json:"session_id"`
	PresentCount int64     `json:"present_count"`
	LateCount    int64     `json:"late_count"`
	AbsentCount  int64     `json:"absent_count"`
	ExcusedCount int64     `json:"excused_count"`
	AverageScore float64   `json:"average_score"`
}

func (s *AttendanceService) StatsForSession(sessionID uuid.UUID) (*SessionStats, error) {
	stats := SessionStats{SessionID: sessionID}

	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := s.DB.Model(&model.LiveSessionAttendanceModel{}).
		Select("live_session_attendance_status AS status, COUNT(*) AS total").
		Where("live_session_attendance_session_id = ?", sessionID).
		Group("live_session_attendance_status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("hitung statistik: %w", constants.ErrTransientStorage)
	}

	for _, r := range rows {
		switch r.Status {
		case model.AttendanceStatusPresent:
			stats.PresentCount = r.Total
		case model.AttendanceStatusLate:
			stats.LateCount = r.Total
		case model.AttendanceStatusAbsent:
			stats.AbsentCount = r.Total
		case model.AttendanceStatusExcused:
			stats.ExcusedCount = r.Total
		}
	}

	var avg *float64
	if err := s.DB.Model(&model.LiveSessionAttendanceModel{}).
		Select("AVG(live_session_attendance_score)").
		Where("live_session_attendance_session_id = ?", sessionID).
		Scan(&avg).Error; err != nil {
		return nil, fmt.Errorf("hitung rata-rata skor: %w", constants.ErrTransientStorage)
	}
	if avg != nil {
		stats.AverageScore = *avg
	}

	return &stats, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// driver pgx tidak memakai pq.Error tapi tetap mengekspos SQLSTATE
	var state interface{ SQLState() string }
	if errors.As(err, &state) {
		return state.SQLState() == "23505"
	}
	return false
}
