// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"canopy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrQuestionnaireNotFound is returned when a questionnaire is not found.
var ErrQuestionnaireNotFound = errors.New("questionnaire not found")

// ErrQuestionNotFound is returned when a question does not exist within a questionnaire.
var ErrQuestionNotFound = errors.New("question not found")

// QuestionnaireFilter narrows questionnaire list queries.
type QuestionnaireFilter struct {
	CustomerID uuid.UUID                  // Only questionnaires issued by this customer.
	SupplierID uuid.UUID                  // Only questionnaires addressed to this supplier.
	Status     entity.QuestionnaireStatus // Only questionnaires in this status.
	Limit      int                        // Maximum rows; 0 means the implementation default.
}

// QuestionnaireRepository defines persistence for due-diligence
// questionnaires and their questions.
type QuestionnaireRepository interface {
	// Create persists a questionnaire together with its questions.
	Create(ctx context.Context, questionnaire *entity.Questionnaire) error

	// FindByID retrieves a questionnaire with its questions in display order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Questionnaire, error)

	// List retrieves questionnaires matching the filter, newest first, with
	// counterparty display names populated. Questions are not loaded.
	List(ctx context.Context, filter QuestionnaireFilter) ([]*entity.Questionnaire, error)

	// UpdateStatus persists a status transition and optional denial reason.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.QuestionnaireStatus, denialReason string) error

	// SaveAnswers persists the answers for the given questions.
	SaveAnswers(ctx context.Context, questionnaireID uuid.UUID, answers map[uuid.UUID]string) error

	// AttachFile records the blob storage key of an uploaded file on a
	// File-type question.
	AttachFile(ctx context.Context, questionnaireID, questionID uuid.UUID, attachmentKey string) error

	// Delete removes a questionnaire and its questions.
	Delete(ctx context.Context, id uuid.UUID) error
}
