package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"yeohaeng/internal/models/request_models"
	"yeohaeng/internal/models/response_models"
	"yeohaeng/internal/repositories"
	"yeohaeng/pkg/utils"
)

type PlannerServiceInterface interface {
	// GeneratePlan runs the bounded generate-extract-validate loop.
	GeneratePlan(ctx context.Context, req request_models.TravelRequest) (*response_models.ItineraryPlan, error)

	// GenerateAndStore is the synchronous path: loop, then persist the
	// finished plan with its request as one record.
	GenerateAndStore(ctx context.Context, req request_models.TravelRequest) (uuid.UUID, *response_models.ItineraryPlan, error)

	// StartGeneration creates a "processing" record for the async path.
	StartGeneration(ctx context.Context, req request_models.TravelRequest) (uuid.UUID, error)

	// Fulfill runs the loop for an already-created record and overwrites
	// it with the outcome. Called by the worker pool, exactly once per id.
	Fulfill(ctx context.Context, id uuid.UUID, req request_models.TravelRequest)

	// MarkFailed closes out a record that never reached a worker.
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error

	GetPlanRecord(ctx context.Context, planId string) (*response_models.PlanRecordResponse, error)
}

type PlannerService struct {
	generator   utils.PlanGeneratorInterface
	geocoder    GeocodeServiceInterface
	validator   *PlanValidator
	planRepo    repositories.PlanRecordRepository
	maxAttempts int
}

func NewPlannerService(
	generator utils.PlanGeneratorInterface,
	geocoder GeocodeServiceInterface,
	validator *PlanValidator,
	planRepo repositories.PlanRecordRepository,
	maxAttempts int,
) PlannerServiceInterface {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &PlannerService{
		generator:   generator,
		geocoder:    geocoder,
		validator:   validator,
		planRepo:    planRepo,
		maxAttempts: maxAttempts,
	}
}

func (s *PlannerService) GeneratePlan(ctx context.Context, req request_models.TravelRequest) (*response_models.ItineraryPlan, error) {
	if s.generator == nil {
		return nil, utils.ErrGeneratorNotInitialized
	}
	if strings.TrimSpace(req.Destination) == "" || req.DurationDays < 1 {
		return nil, utils.ErrInvalidInput
	}

	basePrompt := BuildItineraryPrompt(req)
	viewport := s.destinationViewport(ctx, req.Destination)

	// Corrective addenda accumulate append-only, one per failed attempt,
	// so every retry carries the full context of prior failures.
	var corrections []string
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		prompt := basePrompt
		if len(corrections) > 0 {
			prompt = basePrompt + "\n" + strings.Join(corrections, "\n")
		}

		raw, err := s.generator.GenerateItinerary(ctx, prompt)
		if err != nil {
			log.Printf("generation attempt %d/%d: model call failed: %v", attempt, s.maxAttempts, err)
			lastErr = err
			continue
		}

		var plan response_models.ItineraryPlan
		if err := utils.DecodeJSONObject(raw, &plan); err != nil {
			log.Printf("generation attempt %d/%d: %v", attempt, s.maxAttempts, err)
			lastErr = err
			corrections = append(corrections, correctionFor(err, req.Destination))
			continue
		}

		if err := s.validator.Validate(ctx, &plan, req.Destination, viewport); err != nil {
			log.Printf("generation attempt %d/%d: %v", attempt, s.maxAttempts, err)
			lastErr = err
			corrections = append(corrections, correctionFor(err, req.Destination))
			continue
		}

		log.Printf("valid itinerary for %q on attempt %d/%d", req.Destination, attempt, s.maxAttempts)
		return &plan, nil
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", utils.ErrGenerationExhausted, s.maxAttempts, lastErr)
}

// correctionFor builds the addendum for the next attempt, tailored to what
// went wrong with the previous one.
func correctionFor(err error, destination string) string {
	var geoErr *utils.GeographicError

	switch {
	case errors.Is(err, utils.ErrNoJSONFound):
		return "IMPORTANT: Your previous reply contained no JSON. Reply with a single JSON object only, no prose."
	case errors.Is(err, utils.ErrMalformedJSON):
		return "IMPORTANT: Your previous reply was not valid JSON syntax. Reply with one strictly valid JSON object."
	case errors.Is(err, utils.ErrPlanStructure):
		return fmt.Sprintf("IMPORTANT: Your previous plan was rejected (%v). The \"days\" list must be non-empty and every day needs at least %d activities.", err, minActivitiesPerDay)
	case errors.As(err, &geoErr):
		return fmt.Sprintf("IMPORTANT: These places are outside %s or could not be located: %s. Replace them with real places inside %s.",
			destination, strings.Join(geoErr.Places, ", "), destination)
	default:
		return "IMPORTANT: Your previous reply was rejected. Follow the required JSON format exactly."
	}
}

// destinationViewport resolves the destination's bounding region once per
// generation. Nil disables the geographic check for this run.
func (s *PlannerService) destinationViewport(ctx context.Context, destination string) *Viewport {
	if s.geocoder == nil {
		return nil
	}
	result, err := s.geocoder.Geocode(ctx, destination)
	if err != nil || result == nil {
		log.Printf("could not resolve viewport for %q: %v", destination, err)
		return nil
	}
	return result.Viewport
}

func (s *PlannerService) GenerateAndStore(ctx context.Context, req request_models.TravelRequest) (uuid.UUID, *response_models.ItineraryPlan, error) {
	plan, err := s.GeneratePlan(ctx, req)
	if err != nil {
		return uuid.Nil, nil, err
	}

	id, err := s.planRepo.CreateCompleted(ctx, req, plan)
	if err != nil {
		if errors.Is(err, utils.ErrStoreNotInitialized) {
			return uuid.Nil, nil, err
		}
		return uuid.Nil, nil, utils.ErrDatabaseError
	}
	return id, plan, nil
}

func (s *PlannerService) StartGeneration(ctx context.Context, req request_models.TravelRequest) (uuid.UUID, error) {
	if s.generator == nil {
		return uuid.Nil, utils.ErrGeneratorNotInitialized
	}
	if strings.TrimSpace(req.Destination) == "" || req.DurationDays < 1 {
		return uuid.Nil, utils.ErrInvalidInput
	}

	id, err := s.planRepo.CreateProcessing(ctx, req)
	if err != nil {
		if errors.Is(err, utils.ErrStoreNotInitialized) {
			return uuid.Nil, err
		}
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *PlannerService) Fulfill(ctx context.Context, id uuid.UUID, req request_models.TravelRequest) {
	plan, err := s.GeneratePlan(ctx, req)

	// The job deadline must not take the terminal status write down with
	// it, or the record stays "processing" forever.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err != nil {
		log.Printf("plan %s: generation failed: %v", id, err)
		if markErr := s.planRepo.MarkFailed(writeCtx, id, failureMessage(err)); markErr != nil {
			log.Printf("plan %s: could not mark failed: %v", id, markErr)
		}
		return
	}

	if err := s.planRepo.MarkCompleted(writeCtx, id, plan); err != nil {
		log.Printf("plan %s: could not mark completed: %v", id, err)
	}
}

func (s *PlannerService) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	return s.planRepo.MarkFailed(ctx, id, message)
}

// failureMessage is what polling clients see; internal detail stays in logs.
func failureMessage(err error) string {
	if errors.Is(err, utils.ErrGenerationExhausted) {
		return "the model could not produce a valid itinerary"
	}
	return "itinerary generation failed"
}

func (s *PlannerService) GetPlanRecord(ctx context.Context, planId string) (*response_models.PlanRecordResponse, error) {
	record, err := s.planRepo.GetById(ctx, planId)
	if err != nil {
		if errors.Is(err, utils.ErrStoreNotInitialized) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrPlanNotFound
	}

	return &response_models.PlanRecordResponse{
		PlanID:    record.ID.String(),
		Status:    string(record.Status),
		Error:     record.Error,
		Request:   record.Request,
		Plan:      record.Plan,
		CreatedAt: utils.FormatRFC3339KST(utils.FromUnixSecondsKST(record.CreatedAt)),
	}, nil
}
