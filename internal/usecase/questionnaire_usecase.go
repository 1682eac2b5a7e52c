package usecase

import (
	"context"
	"io"

	"canopy/internal/domain/entity"

	"github.com/google/uuid"
)

// QuestionInput is one question on a new questionnaire.
type QuestionInput struct {
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
}

// CreateQuestionnaireInput defines the data required to issue a
// questionnaire to a supplier.
type CreateQuestionnaireInput struct {
	SupplierID uuid.UUID       `json:"supplier_id"`
	Title      string          `json:"title"`
	Questions  []QuestionInput `json:"questions"`
}

// SubmitAnswersInput carries a supplier's answers and submit action.
type SubmitAnswersInput struct {
	QuestionnaireID uuid.UUID            `json:"-"`
	Answers         map[uuid.UUID]string `json:"answers"`
	Action          string               `json:"action"`
	Message         string               `json:"message"`
}

// UploadAnswerFileInput carries one uploaded file answer.
type UploadAnswerFileInput struct {
	QuestionnaireID uuid.UUID
	QuestionID      uuid.UUID
	Filename        string
	ContentType     string
	Content         io.Reader
}

// QuestionnaireUsecase defines the interface for the due-diligence
// questionnaire workflow.
type QuestionnaireUsecase interface {
	// CreateQuestionnaire issues a questionnaire from the caller's customer
	// organization to a supplier.
	CreateQuestionnaire(ctx context.Context, userID uuid.UUID, input CreateQuestionnaireInput) (*entity.Questionnaire, error)

	// ListQuestionnaires returns the caller's questionnaires, newest first,
	// optionally filtered by status.
	ListQuestionnaires(ctx context.Context, userID uuid.UUID, status string) ([]*entity.Questionnaire, error)

	// GetQuestionnaire returns one questionnaire visible to either party.
	GetQuestionnaire(ctx context.Context, userID, questionnaireID uuid.UUID) (*entity.Questionnaire, error)

	// UploadAnswerFile stores a file answer for a File-type question and
	// returns the storage key the client submits as the answer value.
	UploadAnswerFile(ctx context.Context, userID uuid.UUID, input UploadAnswerFileInput) (string, error)

	// SubmitAnswers saves answers and optionally completes or denies the
	// questionnaire. Completion fails while required questions lack answers.
	SubmitAnswers(ctx context.Context, userID uuid.UUID, input SubmitAnswersInput) (*entity.Questionnaire, error)

	// DeleteQuestionnaire removes a questionnaire issued by the caller.
	DeleteQuestionnaire(ctx context.Context, userID, questionnaireID uuid.UUID) error
}
