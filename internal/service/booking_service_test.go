package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"musok-platform/backend/config"
	"musok-platform/backend/internal/dto"
	"musok-platform/backend/internal/model"
	pkgerrors "musok-platform/backend/pkg/errors"
)

// 테스트 기준 시각: 2026-09-01 (화) 10:00 KST
var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)

func setupBookingService(t *testing.T) (BookingService, *testRepos) {
	t.Helper()
	repos := newTestRepos()
	repoAgg := repos.toRepository()
	cfg := &config.Config{Booking: config.BookingConfig{DefaultOpen: true}}
	logger := zap.NewNop()

	availability := NewAvailabilityService(cfg, repoAgg, logger)
	svc := NewBookingService(repoAgg, availability, logger)
	svc.(*bookingService).now = func() time.Time { return testNow }
	return svc, repos
}

func onlineRequest(shamanID string) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		ShamanID:         shamanID,
		Date:             "2026-09-07",
		StartSlot:        "14:00",
		PartySize:        2,
		ConsultationType: "사주",
	}
}

// ════════════════════════════════════════════════════════════
// Create (온라인 예약)
// ════════════════════════════════════════════════════════════

func TestBooking_Create_Success(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	resp, err := svc.Create(context.Background(), onlineRequest(shaman.ShamanID), "customer-1")
	if err != nil {
		t.Fatalf("온라인 예약 생성 실패: %v", err)
	}

	if resp.Status != string(model.BookingPending) {
		t.Errorf("온라인 예약은 pending 으로 시작, 실제=%s", resp.Status)
	}
	if resp.Source != string(model.SourceOnline) {
		t.Errorf("source=online 기대, 실제=%s", resp.Source)
	}
	// 인원 2명 = 2시간 = 14:00, 15:00 점유
	if resp.Duration != 2 {
		t.Errorf("duration=인원수 기대, 실제=%d", resp.Duration)
	}
	if len(resp.OccupiedSlots) != 2 || resp.OccupiedSlots[0] != "14:00" || resp.OccupiedSlots[1] != "15:00" {
		t.Errorf("점유 슬롯=%v, 기대=[14:00 15:00]", resp.OccupiedSlots)
	}
	// 요금은 시간 비례가 아닌 기본 요금 고정
	if resp.TotalPrice != shaman.BasePrice {
		t.Errorf("총액=%d, 기대 기본 요금=%d", resp.TotalPrice, shaman.BasePrice)
	}
	if resp.CustomerID == nil || *resp.CustomerID != "customer-1" {
		t.Error("customer_id 가 기록되어야 함")
	}
}

func TestBooking_Create_PastDate(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	req := onlineRequest(shaman.ShamanID)
	req.Date = "2026-08-31" // 기준 시각 하루 전
	_, err := svc.Create(context.Background(), req, "customer-1")
	if !errors.Is(err, ErrPastDate) {
		t.Errorf("기대 ErrPastDate, 실제: %v", err)
	}

	// 당일은 허용
	req.Date = "2026-09-01"
	if _, err := svc.Create(context.Background(), req, "customer-1"); err != nil {
		t.Errorf("당일 예약은 허용되어야 함: %v", err)
	}
}

func TestBooking_Create_ShamanNotBookable(t *testing.T) {
	svc, repos := setupBookingService(t)

	// 존재하지 않는 무속인
	_, err := svc.Create(context.Background(), onlineRequest("nonexistent"), "customer-1")
	if !errors.Is(err, ErrShamanNotBookable) {
		t.Errorf("기대 ErrShamanNotBookable, 실제: %v", err)
	}

	// 승인 대기 상태
	shaman := seedApprovedShaman(repos)
	shaman.Status = model.ShamanPending
	_, err = svc.Create(context.Background(), onlineRequest(shaman.ShamanID), "customer-1")
	if !errors.Is(err, ErrShamanNotBookable) {
		t.Errorf("승인 전 무속인: 기대 ErrShamanNotBookable, 실제: %v", err)
	}

	// 정지 상태
	shaman.Status = model.ShamanSuspended
	_, err = svc.Create(context.Background(), onlineRequest(shaman.ShamanID), "customer-1")
	if !errors.Is(err, ErrShamanNotBookable) {
		t.Errorf("정지된 무속인: 기대 ErrShamanNotBookable, 실제: %v", err)
	}
}

func TestBooking_Create_InvalidInput(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	req := onlineRequest(shaman.ShamanID)
	req.StartSlot = "14:30"
	if _, err := svc.Create(context.Background(), req, "customer-1"); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("카탈로그 밖 슬롯: 기대 ErrInvalidSlot, 실제: %v", err)
	}

	req = onlineRequest(shaman.ShamanID)
	req.ConsultationType = "코칭"
	if _, err := svc.Create(context.Background(), req, "customer-1"); !errors.Is(err, ErrInvalidConsultation) {
		t.Errorf("카탈로그 밖 상담 유형: 기대 ErrInvalidConsultation, 실제: %v", err)
	}
}

func TestBooking_Create_SlotConflict(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	if _, err := svc.Create(context.Background(), onlineRequest(shaman.ShamanID), "customer-1"); err != nil {
		t.Fatalf("첫 예약 실패: %v", err)
	}

	// 동일 슬롯 재예약
	_, err := svc.Create(context.Background(), onlineRequest(shaman.ShamanID), "customer-2")
	if !errors.Is(err, ErrSlotConflict) {
		t.Errorf("기대 ErrSlotConflict, 실제: %v", err)
	}

	// 부분 겹침 (15:00 시작, 첫 예약이 15:00 점유 중)
	req := onlineRequest(shaman.ShamanID)
	req.StartSlot = "15:00"
	req.PartySize = 1
	_, err = svc.Create(context.Background(), req, "customer-2")
	if !errors.Is(err, ErrSlotConflict) {
		t.Errorf("부분 겹침: 기대 ErrSlotConflict, 실제: %v", err)
	}

	// 인접 슬롯은 허용 (16:00)
	req.StartSlot = "16:00"
	if _, err := svc.Create(context.Background(), req, "customer-2"); err != nil {
		t.Errorf("인접 슬롯은 예약 가능해야 함: %v", err)
	}
}

func TestBooking_Create_ConflictLeavesNothing(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	// 15:00 단독 점유 선예약
	req1 := onlineRequest(shaman.ShamanID)
	req1.StartSlot = "15:00"
	req1.PartySize = 1
	if _, err := svc.Create(context.Background(), req1, "customer-1"); err != nil {
		t.Fatalf("선예약 실패: %v", err)
	}

	// 14:00~16:00 3시간 요청 → 15:00 에서 충돌
	req2 := onlineRequest(shaman.ShamanID)
	req2.StartSlot = "14:00"
	req2.PartySize = 3
	if _, err := svc.Create(context.Background(), req2, "customer-2"); !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("기대 ErrSlotConflict, 실제: %v", err)
	}

	// 전부 아니면 전무: 14:00, 16:00 도 기록되지 않아야 함
	booked, err := repos.booking.ListOccupiedSlots(context.Background(), shaman.ShamanID, "2026-09-07")
	if err != nil {
		t.Fatalf("점유 조회 실패: %v", err)
	}
	if len(booked) != 1 || booked[0] != "15:00" {
		t.Errorf("충돌 예약의 슬롯이 부분 기록됨: %v", booked)
	}
}

// racingBookingRepo 사전 확인과 저장 사이에 다른 요청이 먼저 들어온
// 동시성 시나리오 재현: 첫 CreateWithSlots 호출이 유니크 제약 충돌로 실패
type racingBookingRepo struct {
	*mockBookingRepo
	raced bool
}

func (r *racingBookingRepo) CreateWithSlots(ctx context.Context, booking *model.Booking) error {
	if !r.raced {
		r.raced = true
		return pkgerrors.ErrUniqueViolation
	}
	return r.mockBookingRepo.CreateWithSlots(ctx, booking)
}

func TestBooking_Create_RaceMapsToSlotConflict(t *testing.T) {
	repos := newTestRepos()
	racing := &racingBookingRepo{mockBookingRepo: repos.booking}
	repoAgg := repos.toRepository()
	repoAgg.Booking = racing

	cfg := &config.Config{Booking: config.BookingConfig{DefaultOpen: true}}
	logger := zap.NewNop()
	availability := NewAvailabilityService(cfg, repoAgg, logger)
	svc := NewBookingService(repoAgg, availability, logger)
	svc.(*bookingService).now = func() time.Time { return testNow }

	shaman := seedApprovedShaman(repos)

	// 사전 확인은 통과하지만 저장 시점에 유니크 제약 충돌
	_, err := svc.Create(context.Background(), onlineRequest(shaman.ShamanID), "customer-1")
	if !errors.Is(err, ErrSlotConflict) {
		t.Errorf("유니크 제약 충돌은 ErrSlotConflict 로 보고되어야 함, 실제: %v", err)
	}

	// 재시도는 성공
	if _, err := svc.Create(context.Background(), onlineRequest(shaman.ShamanID), "customer-1"); err != nil {
		t.Errorf("재시도 실패: %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// CreateManual (수동 예약)
// ════════════════════════════════════════════════════════════

func TestBooking_CreateManual_Success(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	duration := 2
	resp, err := svc.CreateManual(context.Background(), shaman.UserID, &dto.CreateManualBookingRequest{
		Date:             "2026-09-07",
		StartSlot:        "10:00",
		Duration:         &duration,
		ConsultationType: "타로",
		CustomerName:     "  김손님  ",
	})
	if err != nil {
		t.Fatalf("수동 예약 생성 실패: %v", err)
	}

	if resp.Status != string(model.BookingConfirmed) {
		t.Errorf("수동 예약은 confirmed 로 시작, 실제=%s", resp.Status)
	}
	if resp.Source != string(model.SourceManual) {
		t.Errorf("source=manual 기대, 실제=%s", resp.Source)
	}
	if resp.CustomerID != nil {
		t.Error("수동 예약은 customer_id 가 없어야 함")
	}
	if resp.ManualCustomerName == nil || *resp.ManualCustomerName != "김손님" {
		t.Errorf("고객명 공백 정리 실패: %v", resp.ManualCustomerName)
	}
}

func TestBooking_CreateManual_WholeDay(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	wholeDay := model.WholeDayDuration
	resp, err := svc.CreateManual(context.Background(), shaman.UserID, &dto.CreateManualBookingRequest{
		Date:             "2026-09-07",
		StartSlot:        "14:00", // 종일이면 시작 슬롯은 무시된다
		Duration:         &wholeDay,
		ConsultationType: "굿",
		CustomerName:     "박손님",
	})
	if err != nil {
		t.Fatalf("종일 예약 생성 실패: %v", err)
	}

	// 종일 = 첫 슬롯부터 카탈로그 전체
	if resp.StartSlot != string(model.AllTimeSlots[0]) {
		t.Errorf("종일 예약 시작=%s, 기대=%s", resp.StartSlot, model.AllTimeSlots[0])
	}
	if resp.Duration != len(model.AllTimeSlots) {
		t.Errorf("종일 예약 duration=%d, 기대=%d", resp.Duration, len(model.AllTimeSlots))
	}
	if resp.DurationLabel != "종일" {
		t.Errorf("라벨=%s, 기대=종일", resp.DurationLabel)
	}

	// 같은 날 어떤 온라인 예약도 불가
	_, err = svc.Create(context.Background(), onlineRequest(shaman.ShamanID), "customer-1")
	if !errors.Is(err, ErrSlotConflict) {
		t.Errorf("종일 예약일엔 충돌이어야 함, 실제: %v", err)
	}
}

func TestBooking_CreateManual_ClampAtCatalogEnd(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	duration := 5
	resp, err := svc.CreateManual(context.Background(), shaman.UserID, &dto.CreateManualBookingRequest{
		Date:             "2026-09-07",
		StartSlot:        "22:00",
		Duration:         &duration,
		ConsultationType: "사주",
		CustomerName:     "이손님",
	})
	if err != nil {
		t.Fatalf("수동 예약 생성 실패: %v", err)
	}
	// 22:00 에서 5시간 → 카탈로그 끝에서 잘려 2시간으로 기록
	if resp.Duration != 2 {
		t.Errorf("잘린 duration=%d, 기대=2", resp.Duration)
	}
	if len(resp.OccupiedSlots) != 2 {
		t.Errorf("점유 슬롯=%v, 기대 2개", resp.OccupiedSlots)
	}
}

func TestBooking_CreateManual_MissingCustomerName(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	_, err := svc.CreateManual(context.Background(), shaman.UserID, &dto.CreateManualBookingRequest{
		Date:             "2026-09-07",
		StartSlot:        "10:00",
		ConsultationType: "사주",
		CustomerName:     "   ",
	})
	if !errors.Is(err, ErrMissingCustomerName) {
		t.Errorf("기대 ErrMissingCustomerName, 실제: %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// UpdateStatus (상태 전이)
// ════════════════════════════════════════════════════════════

func createTestBooking(t *testing.T, svc BookingService, shamanID, customerID string) *dto.BookingResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), onlineRequest(shamanID), customerID)
	if err != nil {
		t.Fatalf("예약 seed 실패: %v", err)
	}
	return resp
}

func TestBooking_UpdateStatus_ShamanConfirms(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)
	booking := createTestBooking(t, svc, shaman.ShamanID, "customer-1")

	resp, err := svc.UpdateStatus(context.Background(), booking.ID, shaman.UserID, model.RoleShaman,
		&dto.UpdateBookingStatusRequest{Status: "confirmed"})
	if err != nil {
		t.Fatalf("승인 실패: %v", err)
	}
	if resp.Status != string(model.BookingConfirmed) {
		t.Errorf("상태=%s, 기대=confirmed", resp.Status)
	}

	// confirmed → completed
	resp, err = svc.UpdateStatus(context.Background(), booking.ID, shaman.UserID, model.RoleShaman,
		&dto.UpdateBookingStatusRequest{Status: "completed"})
	if err != nil {
		t.Fatalf("완료 처리 실패: %v", err)
	}
	if resp.Status != string(model.BookingCompleted) {
		t.Errorf("상태=%s, 기대=completed", resp.Status)
	}
}

func TestBooking_UpdateStatus_RejectRequiresReason(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)
	booking := createTestBooking(t, svc, shaman.ShamanID, "customer-1")

	_, err := svc.UpdateStatus(context.Background(), booking.ID, shaman.UserID, model.RoleShaman,
		&dto.UpdateBookingStatusRequest{Status: "rejected"})
	if !errors.Is(err, ErrMissingRejectionReason) {
		t.Errorf("사유 없는 거절: 기대 ErrMissingRejectionReason, 실제: %v", err)
	}

	blank := "   "
	_, err = svc.UpdateStatus(context.Background(), booking.ID, shaman.UserID, model.RoleShaman,
		&dto.UpdateBookingStatusRequest{Status: "rejected", RejectionReason: &blank})
	if !errors.Is(err, ErrMissingRejectionReason) {
		t.Errorf("공백 사유 거절: 기대 ErrMissingRejectionReason, 실제: %v", err)
	}

	reason := "해당 날짜에 굿 일정이 있습니다"
	resp, err := svc.UpdateStatus(context.Background(), booking.ID, shaman.UserID, model.RoleShaman,
		&dto.UpdateBookingStatusRequest{Status: "rejected", RejectionReason: &reason})
	if err != nil {
		t.Fatalf("거절 실패: %v", err)
	}
	if resp.RejectionReason == nil || *resp.RejectionReason != reason {
		t.Error("거절 사유가 기록되어야 함")
	}
}

func TestBooking_UpdateStatus_ReleasesSlots(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)
	booking := createTestBooking(t, svc, shaman.ShamanID, "customer-1")

	// 고객 취소 → 슬롯 해제
	_, err := svc.UpdateStatus(context.Background(), booking.ID, "customer-1", model.RoleCustomer,
		&dto.UpdateBookingStatusRequest{Status: "cancelled"})
	if err != nil {
		t.Fatalf("취소 실패: %v", err)
	}

	booked, _ := repos.booking.ListOccupiedSlots(context.Background(), shaman.ShamanID, "2026-09-07")
	if len(booked) != 0 {
		t.Errorf("취소 후 슬롯이 해제되어야 함, 점유=%v", booked)
	}

	// 해제된 슬롯에 재예약 가능
	if _, err := svc.Create(context.Background(), onlineRequest(shaman.ShamanID), "customer-2"); err != nil {
		t.Errorf("해제된 슬롯 재예약 실패: %v", err)
	}
}

func TestBooking_UpdateStatus_IllegalTransition(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)
	booking := createTestBooking(t, svc, shaman.ShamanID, "customer-1")

	// 고객이 승인 시도
	_, err := svc.UpdateStatus(context.Background(), booking.ID, "customer-1", model.RoleCustomer,
		&dto.UpdateBookingStatusRequest{Status: "confirmed"})
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("고객 승인 시도: 기대 ErrIllegalTransition, 실제: %v", err)
	}

	// pending → completed 직행
	_, err = svc.UpdateStatus(context.Background(), booking.ID, shaman.UserID, model.RoleShaman,
		&dto.UpdateBookingStatusRequest{Status: "completed"})
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("pending→completed: 기대 ErrIllegalTransition, 실제: %v", err)
	}

	// 종결 상태 이후 전이 불가
	reason := "일정 중복"
	if _, err := svc.UpdateStatus(context.Background(), booking.ID, shaman.UserID, model.RoleShaman,
		&dto.UpdateBookingStatusRequest{Status: "rejected", RejectionReason: &reason}); err != nil {
		t.Fatalf("거절 실패: %v", err)
	}
	_, err = svc.UpdateStatus(context.Background(), booking.ID, shaman.UserID, model.RoleShaman,
		&dto.UpdateBookingStatusRequest{Status: "confirmed"})
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("종결 후 전이: 기대 ErrIllegalTransition, 실제: %v", err)
	}
}

func TestBooking_UpdateStatus_Ownership(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)
	booking := createTestBooking(t, svc, shaman.ShamanID, "customer-1")

	// 타인 고객
	_, err := svc.UpdateStatus(context.Background(), booking.ID, "customer-2", model.RoleCustomer,
		&dto.UpdateBookingStatusRequest{Status: "cancelled"})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("타인 예약 취소: 기대 ErrForbidden, 실제: %v", err)
	}

	// 다른 무속인
	other := &model.Shaman{
		ShamanID: "shaman-2", UserID: "user-s2",
		BusinessName: "홍대 점집", Status: model.ShamanApproved,
		Specialties: model.StringArray{"점술"},
	}
	repos.shaman.shamans[other.ShamanID] = other
	_, err = svc.UpdateStatus(context.Background(), booking.ID, other.UserID, model.RoleShaman,
		&dto.UpdateBookingStatusRequest{Status: "confirmed"})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("타 무속인 승인: 기대 ErrForbidden, 실제: %v", err)
	}

	// 관리자는 전이 주체가 아니다
	_, err = svc.UpdateStatus(context.Background(), booking.ID, "admin-1", model.RoleAdmin,
		&dto.UpdateBookingStatusRequest{Status: "cancelled"})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("관리자 전이: 기대 ErrForbidden, 실제: %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// List / GetByID / 대시보드
// ════════════════════════════════════════════════════════════

func TestBooking_List_RoleScoped(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	createTestBooking(t, svc, shaman.ShamanID, "customer-1")
	req := onlineRequest(shaman.ShamanID)
	req.StartSlot = "17:00"
	if _, err := svc.Create(context.Background(), req, "customer-2"); err != nil {
		t.Fatalf("예약 seed 실패: %v", err)
	}

	// 고객은 본인 예약만
	list, err := svc.List(context.Background(), "customer-1", model.RoleCustomer, "")
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("고객 목록=%d건, 기대=1", len(list))
	}

	// 무속인은 본인의 전체 예약
	list, err = svc.List(context.Background(), shaman.UserID, model.RoleShaman, "")
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("무속인 목록=%d건, 기대=2", len(list))
	}

	// 관리자 접근 불가
	if _, err := svc.List(context.Background(), "admin-1", model.RoleAdmin, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("관리자 목록: 기대 ErrForbidden, 실제: %v", err)
	}
}

func TestBooking_GetByID_Scoped(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)
	booking := createTestBooking(t, svc, shaman.ShamanID, "customer-1")

	if _, err := svc.GetByID(context.Background(), booking.ID, "customer-1", model.RoleCustomer); err != nil {
		t.Errorf("본인 조회 실패: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), booking.ID, "customer-2", model.RoleCustomer); !errors.Is(err, ErrForbidden) {
		t.Errorf("타인 조회: 기대 ErrForbidden, 실제: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), booking.ID, "admin-1", model.RoleAdmin); err != nil {
		t.Errorf("관리자 조회 실패: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "nonexistent", "customer-1", model.RoleCustomer); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("없는 예약: 기대 ErrBookingNotFound, 실제: %v", err)
	}
}

func TestBooking_DayView(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)
	createTestBooking(t, svc, shaman.ShamanID, "customer-1")

	view, err := svc.DayView(context.Background(), shaman.UserID, "2026-09-07")
	if err != nil {
		t.Fatalf("일별 현황 조회 실패: %v", err)
	}
	if len(view.Bookings) != 1 {
		t.Errorf("예약=%d건, 기대=1", len(view.Bookings))
	}
	if len(view.AvailableSlots) != len(model.AllTimeSlots) {
		t.Errorf("가용 슬롯 응답은 카탈로그 전체여야 함, 실제=%d", len(view.AvailableSlots))
	}
	for _, s := range view.AvailableSlots {
		if (s.Time == "14:00" || s.Time == "15:00") && s.Available {
			t.Errorf("점유 슬롯 %s 가 가용으로 표시됨", s.Time)
		}
	}
}

func TestBooking_MonthlyCalendar(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	createTestBooking(t, svc, shaman.ShamanID, "customer-1") // 09-07 pending

	req := onlineRequest(shaman.ShamanID)
	req.Date = "2026-09-10"
	if _, err := svc.Create(context.Background(), req, "customer-2"); err != nil {
		t.Fatalf("예약 seed 실패: %v", err)
	}

	// 예약 없는 휴무일도 캘린더에 나타나야 함
	repos.schedule.offDays["off-1"] = &model.OffDay{
		OffDayID: "off-1", ShamanID: shaman.ShamanID, OffDate: "2026-09-15",
	}

	cal, err := svc.MonthlyCalendar(context.Background(), shaman.UserID, 2026, 9)
	if err != nil {
		t.Fatalf("캘린더 조회 실패: %v", err)
	}

	byDate := make(map[string]dto.CalendarDay)
	for _, d := range cal.Days {
		byDate[d.Date] = d
	}

	if d := byDate["2026-09-07"]; d.TotalCount != 1 || d.PendingCount != 1 {
		t.Errorf("09-07 집계=%+v", d)
	}
	if d, ok := byDate["2026-09-15"]; !ok || !d.IsOffDay {
		t.Error("예약 없는 휴무일이 캘린더에 없음")
	}
	if cal.Summary.PendingTotal != 2 {
		t.Errorf("대기 합계=%d, 기대=2", cal.Summary.PendingTotal)
	}
}

func TestBooking_DashboardSummary_Revenue(t *testing.T) {
	svc, repos := setupBookingService(t)
	shaman := seedApprovedShaman(repos)

	// 당일 예약을 승인 → 완료 처리하면 이번 달 매출에 잡힌다
	req := onlineRequest(shaman.ShamanID)
	req.Date = "2026-09-01"
	booking, err := svc.Create(context.Background(), req, "customer-1")
	if err != nil {
		t.Fatalf("예약 생성 실패: %v", err)
	}
	for _, status := range []string{"confirmed", "completed"} {
		if _, err := svc.UpdateStatus(context.Background(), booking.ID, shaman.UserID, model.RoleShaman,
			&dto.UpdateBookingStatusRequest{Status: status}); err != nil {
			t.Fatalf("%s 전이 실패: %v", status, err)
		}
	}

	cal, err := svc.MonthlyCalendar(context.Background(), shaman.UserID, 2026, 9)
	if err != nil {
		t.Fatalf("캘린더 조회 실패: %v", err)
	}
	if cal.Summary.ThisMonthRevenue != shaman.BasePrice {
		t.Errorf("이번 달 매출=%d, 기대=%d", cal.Summary.ThisMonthRevenue, shaman.BasePrice)
	}
	if cal.Summary.TodayBookings != 1 {
		t.Errorf("오늘 예약=%d, 기대=1", cal.Summary.TodayBookings)
	}
}
