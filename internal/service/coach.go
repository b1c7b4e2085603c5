package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fricoach/internal/cache"
	"fricoach/internal/casebase"
	"fricoach/internal/fri"
	"fricoach/internal/llm"
	"fricoach/internal/mockdata"
	"fricoach/internal/model"
	"fricoach/internal/repository"
	"fricoach/internal/storage"
	"fricoach/internal/stress"
)

var (
	ErrCustomerRequired = errors.New("customer_id is required")
	ErrMessageRequired  = errors.New("message is required")
	ErrNoConversation   = errors.New("no conversation to archive")
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100

	citedCases     = 2
	presignExpiry  = 15 * time.Minute
	transcriptType = "application/json"
)

// AdviseRequest is one coaching turn: who is asking and what they said.
type AdviseRequest struct {
	CustomerID string `json:"customer_id"`
	Message    string `json:"message"`
}

// HistoryResult is the service-level DTO for a conversation page.
type HistoryResult struct {
	Items []model.ConversationMessage `json:"data"`
	Total int                         `json:"total"`
}

// ArchiveResult describes a stored transcript.
type ArchiveResult struct {
	Key          string `json:"key"`
	Messages     int    `json:"messages"`
	DownloadURL  string `json:"download_url"`
	URLExpirySec int    `json:"url_expiry_sec"`
}

// CoachService defines the use cases of the coaching API.
type CoachService interface {
	// Advise runs the full coaching pipeline for one customer message and
	// persists both sides of the exchange.
	Advise(ctx context.Context, req AdviseRequest) (*model.CoachingResponse, error)

	// Resilience returns the customer's current FRI snapshot, cached when a
	// cache is configured.
	Resilience(ctx context.Context, customerID string) (*model.FRIResult, error)

	// History returns the most recent messages of a customer's conversation,
	// oldest first.
	History(ctx context.Context, customerID string, limit int) (*HistoryResult, error)

	// ArchiveTranscript exports the customer's full conversation to object
	// storage and returns a presigned download URL.
	ArchiveTranscript(ctx context.Context, customerID string) (*ArchiveResult, error)
}

// coachService is the concrete CoachService. The generator and cache are
// optional; the repository and store are not.
type coachService struct {
	repo      repository.ConversationRepository
	store     storage.Storage
	friCache  cache.FRICache
	gen       llm.Generator
	calc      *fri.Calculator
	retriever *casebase.Retriever
	log       *zap.Logger
}

// NewCoachService constructs a CoachService. gen and friCache may be nil:
// without a generator the deterministic fallback coach answers, and without a
// cache every snapshot is computed on demand.
func NewCoachService(repo repository.ConversationRepository, store storage.Storage, friCache cache.FRICache, gen llm.Generator, log *zap.Logger) CoachService {
	return &coachService{
		repo:      repo,
		store:     store,
		friCache:  friCache,
		gen:       gen,
		calc:      fri.New(),
		retriever: casebase.NewRetriever(),
		log:       log,
	}
}

func (s *coachService) Advise(ctx context.Context, req AdviseRequest) (*model.CoachingResponse, error) {
	if req.CustomerID == "" {
		return nil, ErrCustomerRequired
	}
	if req.Message == "" {
		return nil, ErrMessageRequired
	}

	profile := mockdata.ProfileByID(req.CustomerID)

	friRes, err := s.Resilience(ctx, profile.CustomerID)
	if err != nil {
		return nil, err
	}
	stressRes := stress.Analyze(req.Message)
	cases := s.retriever.TopMatches(req.Message, profile.Occupation, citedCases)

	input := llm.PromptInput{
		Profile: profile,
		Message: req.Message,
		Stress:  stressRes,
		FRI:     *friRes,
		Cases:   cases,
	}
	reply, generated := s.generate(ctx, input)

	meta := map[string]string{
		"fri_total":    fmt.Sprintf("%.1f", friRes.TotalScore),
		"stress_level": stressRes.Level,
	}
	now := time.Now().UTC()
	userMsg := &model.ConversationMessage{
		ID:         uuid.New().String(),
		CustomerID: profile.CustomerID,
		Role:       model.RoleUser,
		Content:    req.Message,
		Metadata:   meta,
		CreatedAt:  now,
	}
	assistantMsg := &model.ConversationMessage{
		ID:         uuid.New().String(),
		CustomerID: profile.CustomerID,
		Role:       model.RoleAssistant,
		Content:    reply,
		Metadata:   meta,
		CreatedAt:  now,
	}
	if _, err := s.repo.Append(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("persist user message: %w", err)
	}
	if _, err := s.repo.Append(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("persist assistant message: %w", err)
	}

	return &model.CoachingResponse{
		CustomerID: profile.CustomerID,
		Reply:      reply,
		FRI:        *friRes,
		Stress:     stressRes,
		CitedCases: cases,
		Generated:  generated,
	}, nil
}

// generate produces the reply text. Any generator problem degrades to the
// deterministic fallback coach rather than failing the request.
func (s *coachService) generate(ctx context.Context, input llm.PromptInput) (reply string, generated bool) {
	if s.gen == nil {
		return llm.FallbackReply(input), false
	}

	reply, err := s.gen.Generate(ctx, llm.BuildPrompt(input))
	if err != nil {
		s.log.Warn("llm_generate_failed, using fallback coach",
			zap.String("customer_id", input.Profile.CustomerID),
			zap.Error(err))
		return llm.FallbackReply(input), false
	}
	return reply, true
}

func (s *coachService) Resilience(ctx context.Context, customerID string) (*model.FRIResult, error) {
	if customerID == "" {
		return nil, ErrCustomerRequired
	}
	profile := mockdata.ProfileByID(customerID)

	if s.friCache != nil {
		cached, err := s.friCache.Get(ctx, profile.CustomerID)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn("fri_cache_get_failed", zap.String("customer_id", profile.CustomerID), zap.Error(err))
		}
	}

	res := s.calc.Calculate(mockdata.TransactionHistory(profile.CustomerID))

	if s.friCache != nil {
		if err := s.friCache.Set(ctx, profile.CustomerID, &res); err != nil {
			s.log.Warn("fri_cache_set_failed", zap.String("customer_id", profile.CustomerID), zap.Error(err))
		}
	}
	return &res, nil
}

// History returns the newest messages in chronological order without exposing
// repository types.
func (s *coachService) History(ctx context.Context, customerID string, limit int) (*HistoryResult, error) {
	if customerID == "" {
		return nil, ErrCustomerRequired
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	total, err := s.repo.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	offset := 0
	if total > limit {
		offset = total - limit
	}

	res, err := s.repo.ListByCustomer(ctx, customerID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &HistoryResult{Items: res.Items, Total: res.Total}, nil
}

func (s *coachService) ArchiveTranscript(ctx context.Context, customerID string) (*ArchiveResult, error) {
	if customerID == "" {
		return nil, ErrCustomerRequired
	}

	total, err := s.repo.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNoConversation
	}

	res, err := s.repo.ListByCustomer(ctx, customerID, repository.PageQuery{Limit: total, Offset: 0})
	if err != nil {
		return nil, err
	}

	transcript := model.Transcript{
		CustomerID: customerID,
		ExportedAt: time.Now().UTC(),
		Messages:   res.Items,
	}
	raw, err := json.Marshal(transcript)
	if err != nil {
		return nil, fmt.Errorf("encode transcript: %w", err)
	}

	key := fmt.Sprintf("transcripts/%s/%s.json", customerID, uuid.New().String())
	if _, err := s.store.Put(ctx, key, bytes.NewReader(raw), storage.PutObjectOptions{
		Size:        int64(len(raw)),
		ContentType: transcriptType,
		Metadata:    map[string]string{"customer-id": customerID},
	}); err != nil {
		return nil, fmt.Errorf("upload transcript: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, presignExpiry)
	if err != nil {
		// Rollback: don't leave an unreachable object behind.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign transcript: %w", err)
	}

	return &ArchiveResult{
		Key:          key,
		Messages:     len(res.Items),
		DownloadURL:  url,
		URLExpirySec: int(presignExpiry.Seconds()),
	}, nil
}
