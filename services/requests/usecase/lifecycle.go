package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/liquex/liquex/internal/pkg/errors"
	"github.com/liquex/liquex/internal/pkg/logger"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/internal/utils"
)

// codeTTL bounds how long a handover verification code stays redeemable
const codeTTL = 5 * time.Minute

// defaultRequesterRating is assigned to requesters without transaction history
const defaultRequesterRating = 5.0

// defaultTransactionRating is recorded when no explicit rating is given
const defaultTransactionRating = 5

// Raise validates the submitted fields and creates a new open request
func (uc *RequestUC) Raise(ctx context.Context, requesterID string, input *models.RaiseRequestInput) (*models.Request, error) {
	if requesterID == "" {
		return nil, apperrors.NewValidationError("requester_id", "required")
	}
	if input.Amount == nil {
		return nil, apperrors.NewValidationError("amount", "required")
	}
	if *input.Amount < 0 {
		return nil, apperrors.NewValidationError("amount", "must be non-negative")
	}
	if input.Kind == "" {
		return nil, apperrors.NewValidationError("kind", "required")
	}
	if !models.ValidKind(input.Kind) {
		return nil, apperrors.NewValidationError("kind", "must be one of money, service, goods")
	}
	if input.Urgency == "" {
		return nil, apperrors.NewValidationError("urgency", "required")
	}
	if !models.ValidUrgency(input.Urgency) {
		return nil, apperrors.NewValidationError("urgency", "must be one of low, medium, high")
	}
	if input.Category == "" {
		return nil, apperrors.NewValidationError("category", "required")
	}

	now := time.Now()
	request := &models.Request{
		ID:              uuid.New(),
		Amount:          *input.Amount,
		Kind:            input.Kind,
		Description:     input.Description,
		Urgency:         input.Urgency,
		Category:        input.Category,
		RequesterID:     requesterID,
		RequesterRating: defaultRequesterRating,
		Status:          models.RequestStatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// The requester location may be unavailable; absence degrades distance
	// display, it is not an error
	if input.Location != nil {
		loc := *input.Location
		request.Location = &loc
		request.Geohash = utils.EncodeLocation(loc, uc.cfg.Match.GeohashPrecision)
	}

	if err := uc.requestRepo.Add(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to store request: %w", err)
	}

	if err := uc.requestGW.PublishRequestRaised(ctx, request); err != nil {
		logger.Warn("Failed to publish request raised event",
			logger.String("request_id", request.ID.String()),
			logger.ErrorField(err))
	}

	logger.Info("Request raised",
		logger.String("request_id", request.ID.String()),
		logger.String("kind", string(request.Kind)),
		logger.Float64("amount", request.Amount))

	return request, nil
}

// Get retrieves a request by id
func (uc *RequestUC) Get(ctx context.Context, requestID string) (*models.Request, error) {
	return uc.requestRepo.Get(ctx, requestID)
}

// Accept transitions an open request to accepted and records the responder
func (uc *RequestUC) Accept(ctx context.Context, requestID, responderID string) (*models.Request, error) {
	if responderID == "" {
		return nil, apperrors.NewValidationError("responder_id", "required")
	}

	request, err := uc.requestRepo.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestStatusOpen {
		return nil, apperrors.NewInvalidStateError(requestID, string(request.Status), "accept")
	}

	request.Status = models.RequestStatusAccepted
	request.ResponderID = responderID
	request.UpdatedAt = time.Now()

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	if err := uc.requestGW.PublishRequestAccepted(ctx, request); err != nil {
		logger.Warn("Failed to publish request accepted event",
			logger.String("request_id", requestID),
			logger.ErrorField(err))
	}

	return request, nil
}

// Reject transitions an open request to the terminal rejected state and
// withdraws it from the active store
func (uc *RequestUC) Reject(ctx context.Context, requestID string) (*models.Request, error) {
	request, err := uc.requestRepo.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestStatusOpen {
		return nil, apperrors.NewInvalidStateError(requestID, string(request.Status), "reject")
	}

	request.Status = models.RequestStatusRejected
	request.UpdatedAt = time.Now()

	if err := uc.requestRepo.Remove(ctx, requestID); err != nil {
		return nil, fmt.Errorf("failed to withdraw request: %w", err)
	}

	return request, nil
}

// Cancel terminates an open or accepted request and records a cancelled
// transaction for it
func (uc *RequestUC) Cancel(ctx context.Context, requestID string) (*models.Request, error) {
	request, err := uc.requestRepo.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestStatusOpen && request.Status != models.RequestStatusAccepted {
		return nil, apperrors.NewInvalidStateError(requestID, string(request.Status), "cancel")
	}

	record := &models.TransactionRecord{
		ID:          newTransactionID(),
		Amount:      request.Amount,
		Kind:        request.Kind,
		RequesterID: request.RequesterID,
		ResponderID: request.ResponderID,
		Status:      models.TransactionStatusCancelled,
		CreatedAt:   time.Now(),
	}

	if err := uc.transactionRepo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to archive cancelled transaction: %w", err)
	}
	if err := uc.requestRepo.Remove(ctx, requestID); err != nil {
		return nil, fmt.Errorf("failed to withdraw request: %w", err)
	}

	request.Status = models.RequestStatusCancelled
	request.UpdatedAt = record.CreatedAt

	return request, nil
}

// ShareLocation moves an accepted request into awaiting verification and
// issues the 6-digit handover code. Re-sharing while already awaiting
// verification issues a fresh code, so an expired code never strands the
// request.
func (uc *RequestUC) ShareLocation(ctx context.Context, requestID string, location models.Location) (*models.Request, error) {
	request, err := uc.requestRepo.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestStatusAccepted && request.Status != models.RequestStatusAwaitingVerification {
		return nil, apperrors.NewInvalidStateError(requestID, string(request.Status), "share location")
	}

	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return nil, fmt.Errorf("failed to issue verification code: %w", err)
	}
	if err := uc.codes.Put(ctx, requestID, code, codeTTL); err != nil {
		return nil, fmt.Errorf("failed to store verification code: %w", err)
	}

	request.Status = models.RequestStatusAwaitingVerification
	request.UpdatedAt = time.Now()

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	share := &models.LocationShare{
		RequestID: requestID,
		UserID:    request.ResponderID,
		Location:  location,
	}
	if err := uc.requestGW.PublishLocationShared(ctx, share); err != nil {
		logger.Warn("Failed to publish location shared event",
			logger.String("request_id", requestID),
			logger.ErrorField(err))
	}

	logger.Info("Meetup location shared",
		logger.String("request_id", requestID),
		logger.String("geohash", utils.EncodeLocation(location, uc.cfg.Match.GeohashPrecision)))

	return request, nil
}

// Verify redeems the handover code. On success the request completes, a
// transaction record is archived, and the request leaves the active store.
// A wrong or malformed code leaves the request awaiting verification.
func (uc *RequestUC) Verify(ctx context.Context, requestID, code string) (*models.TransactionRecord, error) {
	request, err := uc.requestRepo.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestStatusAwaitingVerification {
		return nil, apperrors.NewInvalidStateError(requestID, string(request.Status), "verify")
	}

	if !utils.IsSixDigitCode(code) {
		return nil, apperrors.NewVerificationError("code must be exactly 6 digits")
	}

	expected, err := uc.codes.Get(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up verification code: %w", err)
	}
	if expected == "" {
		return nil, apperrors.NewVerificationError("no pending code for this request, share the meetup location again")
	}
	if code != expected {
		return nil, apperrors.NewVerificationError("code does not match")
	}

	record := &models.TransactionRecord{
		ID:          newTransactionID(),
		Amount:      request.Amount,
		Kind:        request.Kind,
		RequesterID: request.RequesterID,
		ResponderID: request.ResponderID,
		Status:      models.TransactionStatusCompleted,
		Rating:      defaultTransactionRating,
		CreatedAt:   time.Now(),
	}

	if err := uc.transactionRepo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to archive transaction: %w", err)
	}
	if err := uc.requestRepo.Remove(ctx, requestID); err != nil {
		return nil, fmt.Errorf("failed to archive request: %w", err)
	}

	if err := uc.codes.Delete(ctx, requestID); err != nil {
		logger.Warn("Failed to clear verification code",
			logger.String("request_id", requestID),
			logger.ErrorField(err))
	}
	if err := uc.requestGW.PublishTransactionCompleted(ctx, record); err != nil {
		logger.Warn("Failed to publish transaction completed event",
			logger.String("transaction_id", record.ID),
			logger.ErrorField(err))
	}

	logger.Info("Request completed",
		logger.String("request_id", requestID),
		logger.String("transaction_id", record.ID))

	return record, nil
}

// ListTransactions returns the archived history, newest first
func (uc *RequestUC) ListTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	return uc.transactionRepo.List(ctx)
}

// Reset clears the session request store. Called on logout.
func (uc *RequestUC) Reset(ctx context.Context) error {
	return uc.requestRepo.Reset(ctx)
}

func newTransactionID() string {
	return "TXN" + uuid.NewString()
}
