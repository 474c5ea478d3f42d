package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"yeohaeng/internal/models/request_models"
	"yeohaeng/pkg/utils"
)

type GenerationJob struct {
	PlanID  uuid.UUID
	Request request_models.TravelRequest
}

// PlanFulfiller is the slice of the planner the pool needs.
type PlanFulfiller interface {
	Fulfill(ctx context.Context, id uuid.UUID, req request_models.TravelRequest)
}

// GenerationWorkerPool bounds concurrent background generations: a fixed
// number of workers drain a buffered queue, so a burst of requests cannot
// fan out into unbounded goroutines and model calls. Each job owns its
// record exclusively; no lock is needed around record writes.
type GenerationWorkerPool struct {
	planner PlanFulfiller
	jobs    chan GenerationJob
	wg      sync.WaitGroup
	workers int
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

func NewGenerationWorkerPool(planner PlanFulfiller, workers, queueSize int, timeout time.Duration) *GenerationWorkerPool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &GenerationWorkerPool{
		planner: planner,
		jobs:    make(chan GenerationJob, queueSize),
		workers: workers,
		timeout: timeout,
	}
}

func (p *GenerationWorkerPool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
	log.Printf("generation worker pool started with %d worker(s)", p.workers)
}

func (p *GenerationWorkerPool) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		p.planner.Fulfill(ctx, job.PlanID, job.Request)
		cancel()
	}
}

// Enqueue never blocks; a full queue is surfaced to the caller instead.
// A stopped pool rejects jobs the same way rather than panicking on the
// closed channel.
func (p *GenerationWorkerPool) Enqueue(job GenerationJob) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return utils.ErrQueueFull
	}
	select {
	case p.jobs <- job:
		return nil
	default:
		return utils.ErrQueueFull
	}
}

// Stop drains the queue and waits for in-flight jobs to finish.
func (p *GenerationWorkerPool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
