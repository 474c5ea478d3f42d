package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	dbm "yeohaeng/internal/models/db_models"
	"yeohaeng/internal/models/request_models"
	resp "yeohaeng/internal/models/response_models"
	"yeohaeng/pkg/utils"
)

// memoryPlanRepo keeps records in a map, enough to observe status
// transitions without a database.
type memoryPlanRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*dbm.PlanRecord
}

func newMemoryPlanRepo() *memoryPlanRepo {
	return &memoryPlanRepo{records: make(map[uuid.UUID]*dbm.PlanRecord)}
}

func (r *memoryPlanRepo) CreateProcessing(ctx context.Context, req request_models.TravelRequest) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.records[id] = &dbm.PlanRecord{
		BaseModel: dbm.BaseModel{ID: id, CreatedAt: time.Now().Unix()},
		Status:    dbm.PlanStatusProcessing,
		Request:   req,
	}
	return id, nil
}

func (r *memoryPlanRepo) CreateCompleted(ctx context.Context, req request_models.TravelRequest, plan *resp.ItineraryPlan) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.records[id] = &dbm.PlanRecord{
		BaseModel: dbm.BaseModel{ID: id, CreatedAt: time.Now().Unix()},
		Status:    dbm.PlanStatusCompleted,
		Request:   req,
		Plan:      plan,
	}
	return id, nil
}

func (r *memoryPlanRepo) MarkCompleted(ctx context.Context, id uuid.UUID, plan *resp.ItineraryPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return errors.New("no such record")
	}
	rec.Status = dbm.PlanStatusCompleted
	rec.Plan = plan
	return nil
}

func (r *memoryPlanRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return errors.New("no such record")
	}
	rec.Status = dbm.PlanStatusFailed
	rec.Error = message
	return nil
}

func (r *memoryPlanRepo) GetById(ctx context.Context, planId string) (*dbm.PlanRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, err := uuid.Parse(planId)
	if err != nil {
		return nil, nil
	}
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *memoryPlanRepo) status(id uuid.UUID) dbm.PlanStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[id].Status
}

// slowGenerator blocks until released, then answers validly.
type slowGenerator struct {
	release chan struct{}
}

func (g *slowGenerator) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	select {
	case <-g.release:
		return validPlanJSON, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestAsyncGenerationLifecycle(t *testing.T) {
	repo := newMemoryPlanRepo()
	gen := &slowGenerator{release: make(chan struct{})}
	planner := NewPlannerService(gen, nil, NewPlanValidator(nil), repo, 2)

	pool := NewGenerationWorkerPool(planner, 1, 4, 5*time.Second)
	pool.Start()

	id, err := planner.StartGeneration(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("StartGeneration: %v", err)
	}
	if got := repo.status(id); got != dbm.PlanStatusProcessing {
		t.Fatalf("expected processing before enqueue, got %s", got)
	}

	if err := pool.Enqueue(GenerationJob{PlanID: id, Request: testRequest()}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if got := repo.status(id); got != dbm.PlanStatusProcessing {
		t.Fatalf("expected processing while the job runs, got %s", got)
	}

	close(gen.release)
	pool.Stop()

	rec, err := repo.GetById(context.Background(), id.String())
	if err != nil || rec == nil {
		t.Fatalf("GetById: rec=%v err=%v", rec, err)
	}
	if rec.Status != dbm.PlanStatusCompleted {
		t.Fatalf("expected completed, got %s (error %q)", rec.Status, rec.Error)
	}
	if rec.Plan == nil || len(rec.Plan.Days) == 0 {
		t.Fatalf("completed record has no plan")
	}
}

func TestEnqueueFullQueue(t *testing.T) {
	gen := &slowGenerator{release: make(chan struct{})}
	planner := NewPlannerService(gen, nil, NewPlanValidator(nil), newMemoryPlanRepo(), 1)

	// One worker, queue of one: the first job occupies the worker, the
	// second fills the queue, the third must bounce.
	pool := NewGenerationWorkerPool(planner, 1, 1, 5*time.Second)
	pool.Start()

	if err := pool.Enqueue(GenerationJob{PlanID: uuid.New(), Request: testRequest()}); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}

	// Give the worker a moment to pull the first job off the channel.
	deadline := time.Now().Add(time.Second)
	enqueued := false
	for time.Now().Before(deadline) {
		if err := pool.Enqueue(GenerationJob{PlanID: uuid.New(), Request: testRequest()}); err == nil {
			enqueued = true
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !enqueued {
		t.Fatalf("second enqueue never fit the queue")
	}

	if err := pool.Enqueue(GenerationJob{PlanID: uuid.New(), Request: testRequest()}); !errors.Is(err, utils.ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	close(gen.release)
	pool.Stop()
}

// ctxAwareRepo refuses writes on an expired context, like gorm's
// WithContext does against a real database.
type ctxAwareRepo struct {
	*memoryPlanRepo
}

func (r *ctxAwareRepo) MarkCompleted(ctx context.Context, id uuid.UUID, plan *resp.ItineraryPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.memoryPlanRepo.MarkCompleted(ctx, id, plan)
}

func (r *ctxAwareRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.memoryPlanRepo.MarkFailed(ctx, id, message)
}

func TestJobDeadlineStillMarksRecordFailed(t *testing.T) {
	repo := &ctxAwareRepo{newMemoryPlanRepo()}
	gen := &slowGenerator{release: make(chan struct{})} // never released
	planner := NewPlannerService(gen, nil, NewPlanValidator(nil), repo, 2)

	pool := NewGenerationWorkerPool(planner, 1, 1, 50*time.Millisecond)
	pool.Start()

	id, err := planner.StartGeneration(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("StartGeneration: %v", err)
	}
	if err := pool.Enqueue(GenerationJob{PlanID: id, Request: testRequest()}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	// Stop waits for the job, which can only end via the deadline.
	pool.Stop()

	rec, _ := repo.GetById(context.Background(), id.String())
	if rec.Status != dbm.PlanStatusFailed {
		t.Fatalf("record stuck in %q after the job deadline", rec.Status)
	}
	if rec.Error == "" {
		t.Fatalf("failed record needs a client-facing message")
	}
}

func TestEnqueueAfterStop(t *testing.T) {
	planner := NewPlannerService(&scriptedGenerator{replies: []string{validPlanJSON}}, nil, NewPlanValidator(nil), newMemoryPlanRepo(), 1)
	pool := NewGenerationWorkerPool(planner, 1, 4, time.Second)
	pool.Start()
	pool.Stop()

	if err := pool.Enqueue(GenerationJob{PlanID: uuid.New(), Request: testRequest()}); !errors.Is(err, utils.ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull from a stopped pool, got %v", err)
	}
}

func TestFulfillMarksFailedOnExhaustion(t *testing.T) {
	repo := newMemoryPlanRepo()
	gen := &scriptedGenerator{replies: []string{"not json at all"}}
	planner := NewPlannerService(gen, nil, NewPlanValidator(nil), repo, 2)

	id, err := planner.StartGeneration(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("StartGeneration: %v", err)
	}

	planner.Fulfill(context.Background(), id, testRequest())

	rec, _ := repo.GetById(context.Background(), id.String())
	if rec.Status != dbm.PlanStatusFailed {
		t.Fatalf("expected failed, got %s", rec.Status)
	}
	if rec.Error == "" {
		t.Fatalf("failed record needs a client-facing message")
	}
}
