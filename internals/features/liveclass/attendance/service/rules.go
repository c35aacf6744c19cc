package service

import (
	"time"

	sessionModel "kelasku_backend/internals/features/liveclass/sessions/model"

	"kelasku_backend/internals/features/liveclass/attendance/model"
)

// Aturan state machine kehadiran sebagai fungsi murni di atas model, supaya
// transisi join/leave dan skor bisa diuji tanpa database. Service hanya
// membungkus fungsi-fungsi ini dengan transaksi.

// LateMinutes: berapa menit setelah grace period user baru join. Join pertama
// saja yang menentukan — re-join tidak mengubah keterlambatan.
func LateMinutes(joinedAt, sessionStart time.Time, graceMinutes int) int {
	deadline := sessionStart.Add(time.Duration(graceMinutes) * time.Minute)
	if !joinedAt.After(deadline) {
		return 0
	}
	return int(joinedAt.Sub(sessionStart).Minutes())
}

// CycleMinutes: durasi satu siklus join→leave, di-clamp ≥ 0 (jam yang mundur
// tidak boleh menghasilkan durasi negatif).
func CycleMinutes(joinedAt, leftAt time.Time) int {
	if leftAt.Before(joinedAt) {
		return 0
	}
	return int(leftAt.Sub(joinedAt).Minutes())
}

// EarlyLeaveMinutes: berapa menit sebelum jadwal selesai user keluar.
func EarlyLeaveMinutes(leftAt, sessionEnd time.Time) int {
	if !leftAt.Before(sessionEnd) {
		return 0
	}
	return int(sessionEnd.Sub(leftAt).Minutes())
}

// ComputeScore: skor 0–100 dari keterlambatan, pulang awal, dan kelengkapan
// durasi relatif jadwal. Murni pelaporan — tidak pernah dipakai entitlement.
func ComputeScore(lateMinutes, earlyLeaveMinutes, durationMinutes, scheduledMinutes int) int {
	base := 100
	if scheduledMinutes > 0 {
		completeness := float64(durationMinutes) / float64(scheduledMinutes)
		if completeness > 1 {
			completeness = 1
		}
		base = 40 + int(60*completeness)
	}

	penalty := lateMinutes
	if penalty > 25 {
		penalty = 25
	}
	early := earlyLeaveMinutes
	if early > 15 {
		early = 15
	}
	penalty += early

	score := base - penalty
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// HasFreeSlot: predikat capacity guard. maxParticipants NULL = tanpa batas.
func HasFreeSlot(maxParticipants *int, presentCount int64) bool {
	if maxParticipants == nil {
		return true
	}
	return presentCount < int64(*maxParticipants)
}

// ApplyJoin menerapkan (re-)join ke baris attendance. Idempoten terhadap
// baris: join ulang menimpa joined_at, membuka siklus baru, dan TIDAK
// mereset durasi yang sudah terkumpul. Status excused manual tidak ditimpa.
func ApplyJoin(a *model.LiveSessionAttendanceModel, sess *sessionModel.LiveSessionModel, now time.Time, graceMinutes int) {
	firstJoin := a.LiveSessionAttendanceJoinedAt == nil

	a.LiveSessionAttendanceJoinedAt = &now
	a.LiveSessionAttendanceLeftAt = nil
	a.LiveSessionAttendanceIsPresent = true

	if firstJoin {
		a.LiveSessionAttendanceLateMinutes = LateMinutes(now, sess.LiveSessionStartTime, graceMinutes)
	}

	if !a.LiveSessionAttendanceIsManual {
		if a.LiveSessionAttendanceLateMinutes > 0 {
			a.LiveSessionAttendanceStatus = model.AttendanceStatusLate
		} else {
			a.LiveSessionAttendanceStatus = model.AttendanceStatusPresent
		}
	}
}

// ApplyLeave menutup siklus yang sedang terbuka: akumulasi durasi, hitung
// pulang-awal, recompute skor. Presence tetap true — sudah jadi fakta
// historis. Tanpa siklus terbuka → false (caller yang menerjemahkan ke error).
func ApplyLeave(a *model.LiveSessionAttendanceModel, sess *sessionModel.LiveSessionModel, now time.Time) bool {
	if a.LiveSessionAttendanceJoinedAt == nil || a.LiveSessionAttendanceLeftAt != nil {
		return false
	}

	a.LiveSessionAttendanceLeftAt = &now
	a.LiveSessionAttendanceDurationMinutes += CycleMinutes(*a.LiveSessionAttendanceJoinedAt, now)
	a.LiveSessionAttendanceEarlyLeaveMinutes = EarlyLeaveMinutes(now, sess.LiveSessionEndTime)

	a.LiveSessionAttendanceScore = ComputeScore(
		a.LiveSessionAttendanceLateMinutes,
		a.LiveSessionAttendanceEarlyLeaveMinutes,
		a.LiveSessionAttendanceDurationMinutes,
		sess.LiveSessionDurationMinutes,
	)
	return true
}
