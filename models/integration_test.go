package models_test

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shvendra/bookmyworker-back/models"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN and
// recreates the schema. Tests are skipped unless INTEGRATION_TESTS is set,
// e.g.
//
//	INTEGRATION_TESTS=1 TEST_DATABASE_DSN="host=localhost user=postgres ..." go test ./models/
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires postgres)")
	}
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.Migrator().DropTable(
		&models.RequirementInterest{}, &models.WorkerAttendance{}, &models.Requirement{},
	); err != nil {
		t.Fatalf("drop tables: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Requirement{}, &models.RequirementInterest{}, &models.WorkerAttendance{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newRequirement(employerID uint) *models.Requirement {
	return &models.Requirement{
		WorkType:                "Construction",
		WorkerQuantitySkilled:   10,
		WorkerQuantityUnskilled: 5,
		WorkLocation:            "Site A",
		WorkerNeedDate:          time.Date(2026, 10, 1, 14, 30, 0, 0, time.UTC),
		State:                   "UP",
		District:                "Lucknow",
		EmployerID:              employerID,
		EmployerName:            "E Corp",
		EmployerPhone:           "9000000001",
		Status:                  models.RequirementPending,
	}
}

func TestConcurrentCreatesYieldDistinctERNs(t *testing.T) {
	db := openTestDB(t)

	const n = 40
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := newRequirement(uint(i + 1))
			errs <- models.CreateRequirement(db, r)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("CreateRequirement: %v", err)
		}
	}

	var rows []models.Requirement
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != n {
		t.Fatalf("got %d requirements, want %d", len(rows), n)
	}
	seen := map[int]bool{}
	for _, r := range rows {
		if r.ERN < 100000 || r.ERN > 999999 {
			t.Fatalf("ERN out of range: %d", r.ERN)
		}
		if seen[r.ERN] {
			t.Fatalf("duplicate ERN: %d", r.ERN)
		}
		seen[r.ERN] = true
		if h, m, s := r.WorkerNeedDate.UTC().Clock(); h != 0 || m != 0 || s != 0 {
			t.Fatalf("need date not day-truncated: %v", r.WorkerNeedDate)
		}
	}
}

func TestDuplicateInterestIsSoftRejected(t *testing.T) {
	db := openTestDB(t)

	r := newRequirement(1)
	if err := models.CreateRequirement(db, r); err != nil {
		t.Fatalf("CreateRequirement: %v", err)
	}

	wage := decimal.NewFromInt(600)
	first := &models.RequirementInterest{RequirementID: r.ID, AgentID: 11, AgentRequiredWage: wage}
	inserted, err := models.ExpressInterest(db, first)
	if err != nil || !inserted {
		t.Fatalf("first interest: inserted=%v err=%v", inserted, err)
	}

	second := &models.RequirementInterest{RequirementID: r.ID, AgentID: 11, AgentRequiredWage: decimal.NewFromInt(550)}
	inserted, err = models.ExpressInterest(db, second)
	if err != nil {
		t.Fatalf("second interest: %v", err)
	}
	if inserted {
		t.Fatal("duplicate interest reported as inserted")
	}

	var n int64
	if err := db.Model(&models.RequirementInterest{}).
		Where("requirement_id = ?", r.ID).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("got %d interest rows, want 1", n)
	}
}

func TestConcurrentDistinctAgentsBothRecorded(t *testing.T) {
	db := openTestDB(t)

	r := newRequirement(1)
	if err := models.CreateRequirement(db, r); err != nil {
		t.Fatalf("CreateRequirement: %v", err)
	}

	const agents = 20
	var wg sync.WaitGroup
	errs := make(chan error, agents)
	for i := 0; i < agents; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry := &models.RequirementInterest{
				RequirementID:     r.ID,
				AgentID:           uint(100 + i),
				AgentRequiredWage: decimal.NewFromInt(int64(500 + i)),
			}
			inserted, err := models.ExpressInterest(db, entry)
			if err == nil && !inserted {
				err = fmt.Errorf("agent %d lost its insert", 100+i)
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("ExpressInterest: %v", err)
		}
	}

	var n int64
	if err := db.Model(&models.RequirementInterest{}).
		Where("requirement_id = ?", r.ID).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != agents {
		t.Fatalf("got %d interest rows, want %d", n, agents)
	}
}

func TestAttendanceTimestampsThroughStore(t *testing.T) {
	db := openTestDB(t)

	a := models.WorkerAttendance{
		AgentID:         11,
		RequirementID:   1,
		NumberOfWorkers: 5,
		PerWorkerRate:   decimal.NewFromInt(500),
		SentByAgent:     true,
		AgentName:       "A One",
		EmployerName:    "E Corp",
		ERNNumber:       "123456",
		Status:          models.AttendancePending,
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.SendDateTime == nil {
		t.Fatal("send_date_time not stamped at creation")
	}
	sentAt := *a.SendDateTime

	// a later no-op save must not move the timestamp
	time.Sleep(10 * time.Millisecond)
	if err := db.Save(&a).Error; err != nil {
		t.Fatalf("save: %v", err)
	}
	var reread models.WorkerAttendance
	if err := db.First(&reread, a.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	// postgres stores microseconds, so compare with a small tolerance
	if reread.SendDateTime == nil || reread.SendDateTime.Sub(sentAt).Abs() > time.Millisecond {
		t.Fatalf("send_date_time changed: %v != %v", reread.SendDateTime, sentAt)
	}

	reread.Status = models.AttendanceAccepted
	reread.EmployerAccepted = true
	reread.ReceivedByEmployer = true
	if err := db.Save(&reread).Error; err != nil {
		t.Fatalf("accept: %v", err)
	}
	if reread.ReceivedDateTime == nil {
		t.Fatal("received_date_time not stamped on acceptance")
	}
}

func TestAssignIsSingleAtomicUpdate(t *testing.T) {
	db := openTestDB(t)

	r := newRequirement(1)
	if err := models.CreateRequirement(db, r); err != nil {
		t.Fatalf("CreateRequirement: %v", err)
	}

	res := db.Model(&models.Requirement{}).Where("ern = ?", r.ERN).Updates(map[string]any{
		"status":               models.RequirementAssigned,
		"assigned_agent_id":    42,
		"assigned_agent_name":  "A Two",
		"assigned_agent_phone": "9000000042",
	})
	if res.Error != nil || res.RowsAffected != 1 {
		t.Fatalf("assign: rows=%d err=%v", res.RowsAffected, res.Error)
	}

	var got models.Requirement
	if err := db.Where("ern = ?", r.ERN).First(&got).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != models.RequirementAssigned || got.AssignedAgentID == nil || *got.AssignedAgentID != 42 {
		t.Fatalf("assignment not applied: %+v", got)
	}
}
