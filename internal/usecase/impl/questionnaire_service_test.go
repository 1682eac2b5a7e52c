package impl

import (
	"context"
	"strings"
	"testing"

	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	"canopy/internal/domain/service"
	mockRepo "canopy/internal/mocks/repository"
	mockService "canopy/internal/mocks/service"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// questionnaireServiceFixtures holds all test dependencies for questionnaire service tests.
type questionnaireServiceFixtures struct {
	service           usecase.QuestionnaireUsecase
	txManager         *mockRepo.MockTransactionManager
	questionnaireRepo *mockRepo.MockQuestionnaireRepository
	partyRepo         *mockRepo.MockPartyRepository
	attachments       *mockService.MockAttachmentStorage
}

func createTestQuestionnaireService(t *testing.T) questionnaireServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	questionnaireRepo := mockRepo.NewMockQuestionnaireRepository(t)
	partyRepo := mockRepo.NewMockPartyRepository(t)
	attachments := mockService.NewMockAttachmentStorage(t)

	svc := NewQuestionnaireService(QuestionnaireServiceParams{
		TxManager:         txManager,
		QuestionnaireRepo: questionnaireRepo,
		PartyRepo:         partyRepo,
		Attachments:       attachments,
		Logger:            testLogger(),
	})

	return questionnaireServiceFixtures{
		service:           svc,
		txManager:         txManager,
		questionnaireRepo: questionnaireRepo,
		partyRepo:         partyRepo,
		attachments:       attachments,
	}
}

func (f questionnaireServiceFixtures) expectCustomerUser(ctx context.Context, userID uuid.UUID, customer *entity.Customer) {
	f.partyRepo.EXPECT().FindCustomerByUser(ctx, userID).Return(customer, nil)
	f.partyRepo.EXPECT().FindSupplierByUser(ctx, userID).Return(nil, repository.ErrSupplierNotFound)
}

func (f questionnaireServiceFixtures) expectSupplierUser(ctx context.Context, userID uuid.UUID, supplier *entity.Supplier) {
	f.partyRepo.EXPECT().FindCustomerByUser(ctx, userID).Return(nil, repository.ErrCustomerNotFound)
	f.partyRepo.EXPECT().FindSupplierByUser(ctx, userID).Return(supplier, nil)
}

func (f questionnaireServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewQuestionnaireRepository().Return(f.questionnaireRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestQuestionnaireService_CreateQuestionnaire_NormalizesQuestionTypes(t *testing.T) {
	fx := createTestQuestionnaireService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), CompanyName: "Choco Imports"}
	supplierID := uuid.New()

	fx.expectCustomerUser(ctx, userID, customer)
	fx.partyRepo.EXPECT().FindSupplierByID(ctx, supplierID).Return(&entity.Supplier{ID: supplierID}, nil)
	fx.questionnaireRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Questionnaire")).Return(nil)

	questionnaire, err := fx.service.CreateQuestionnaire(ctx, userID, usecase.CreateQuestionnaireInput{
		SupplierID: supplierID,
		Title:      "EUDR due diligence",
		Questions: []usecase.QuestionInput{
			{Text: "Describe your supply chain", Type: "text", Required: true},
			{Text: "Select your certification", Type: "radio", Options: []string{"FSC", "RA"}},
			{Text: "Upload your land title", Type: "file upload", Required: true},
		},
	})

	require.NoError(t, err)
	require.Len(t, questionnaire.Questions, 3)
	assert.Equal(t, entity.QuestionTypeText, questionnaire.Questions[0].Type)
	assert.Equal(t, entity.QuestionTypeMultipleChoice, questionnaire.Questions[1].Type)
	assert.Equal(t, entity.QuestionTypeFile, questionnaire.Questions[2].Type)
	assert.Equal(t, entity.QuestionnaireStatusPending, questionnaire.Status)
	assert.Equal(t, 2, questionnaire.Questions[2].Position)
}

func TestQuestionnaireService_CreateQuestionnaire_NeedsQuestions(t *testing.T) {
	fx := createTestQuestionnaireService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.expectCustomerUser(ctx, userID, &entity.Customer{ID: uuid.New()})

	_, err := fx.service.CreateQuestionnaire(ctx, userID, usecase.CreateQuestionnaireInput{
		SupplierID: uuid.New(),
		Title:      "Empty",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestQuestionnaireService_SubmitAnswers_PrematureCompletionBlocked(t *testing.T) {
	fx := createTestQuestionnaireService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	answered := entity.Question{ID: uuid.New(), Text: "Q1", Type: entity.QuestionTypeText, Required: true}
	unanswered := entity.Question{ID: uuid.New(), Text: "Where are your farms?", Type: entity.QuestionTypeText, Required: true}
	questionnaire := &entity.Questionnaire{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		SupplierID: supplier.ID,
		Status:     entity.QuestionnaireStatusPending,
		Questions:  []entity.Question{answered, unanswered},
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.questionnaireRepo.EXPECT().FindByID(ctx, questionnaire.ID).Return(questionnaire, nil)

	// No transaction expectation: a blocked completion must persist nothing.
	_, err := fx.service.SubmitAnswers(ctx, userID, usecase.SubmitAnswersInput{
		QuestionnaireID: questionnaire.ID,
		Answers:         map[uuid.UUID]string{answered.ID: "We buy from two coops"},
		Action:          "complete",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domainerrors.ErrMissingRequiredAnswers.Message())

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "Where are your farms?")
}

func TestQuestionnaireService_SubmitAnswers_CompletesWhenAllRequiredAnswered(t *testing.T) {
	fx := createTestQuestionnaireService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	question := entity.Question{ID: uuid.New(), Text: "Q1", Type: entity.QuestionTypeText, Required: true}
	questionnaire := &entity.Questionnaire{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Status:     entity.QuestionnaireStatusDraft,
		Questions:  []entity.Question{question},
	}
	answers := map[uuid.UUID]string{question.ID: "Two cooperatives in San Martin"}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.questionnaireRepo.EXPECT().FindByID(ctx, questionnaire.ID).Return(questionnaire, nil)
	fx.expectTransaction(t, ctx)
	fx.questionnaireRepo.EXPECT().SaveAnswers(ctx, questionnaire.ID, answers).Return(nil)
	fx.questionnaireRepo.EXPECT().
		UpdateStatus(ctx, questionnaire.ID, entity.QuestionnaireStatusCompleted, "").
		Return(nil)

	result, err := fx.service.SubmitAnswers(ctx, userID, usecase.SubmitAnswersInput{
		QuestionnaireID: questionnaire.ID,
		Answers:         answers,
		Action:          "submit",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.QuestionnaireStatusCompleted, result.Status)
}

func TestQuestionnaireService_SubmitAnswers_DenyRecordsDefaultReason(t *testing.T) {
	fx := createTestQuestionnaireService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	questionnaire := &entity.Questionnaire{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Status:     entity.QuestionnaireStatusPending,
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.questionnaireRepo.EXPECT().FindByID(ctx, questionnaire.ID).Return(questionnaire, nil)
	fx.expectTransaction(t, ctx)
	fx.questionnaireRepo.EXPECT().
		UpdateStatus(ctx, questionnaire.ID, entity.QuestionnaireStatusDenied, entity.DefaultDenialReason).
		Return(nil)

	result, err := fx.service.SubmitAnswers(ctx, userID, usecase.SubmitAnswersInput{
		QuestionnaireID: questionnaire.ID,
		Action:          "deny",
		Message:         "   ",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.QuestionnaireStatusDenied, result.Status)
	assert.Equal(t, entity.DefaultDenialReason, result.DenialReason)
}

func TestQuestionnaireService_SubmitAnswers_UnknownActionSavesDraft(t *testing.T) {
	fx := createTestQuestionnaireService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	question := entity.Question{ID: uuid.New(), Text: "Q1", Type: entity.QuestionTypeText}
	questionnaire := &entity.Questionnaire{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Status:     entity.QuestionnaireStatusPending,
		Questions:  []entity.Question{question},
	}
	answers := map[uuid.UUID]string{question.ID: "partial answer"}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.questionnaireRepo.EXPECT().FindByID(ctx, questionnaire.ID).Return(questionnaire, nil)
	fx.expectTransaction(t, ctx)
	fx.questionnaireRepo.EXPECT().SaveAnswers(ctx, questionnaire.ID, answers).Return(nil)
	fx.questionnaireRepo.EXPECT().
		UpdateStatus(ctx, questionnaire.ID, entity.QuestionnaireStatusDraft, "").
		Return(nil)

	result, err := fx.service.SubmitAnswers(ctx, userID, usecase.SubmitAnswersInput{
		QuestionnaireID: questionnaire.ID,
		Answers:         answers,
		Action:          "save for later",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.QuestionnaireStatusDraft, result.Status)
}

func TestQuestionnaireService_SubmitAnswers_ResolvedQuestionnaireRejected(t *testing.T) {
	fx := createTestQuestionnaireService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	questionnaire := &entity.Questionnaire{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Status:     entity.QuestionnaireStatusCompleted,
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.questionnaireRepo.EXPECT().FindByID(ctx, questionnaire.ID).Return(questionnaire, nil)

	_, err := fx.service.SubmitAnswers(ctx, userID, usecase.SubmitAnswersInput{
		QuestionnaireID: questionnaire.ID,
		Action:          "submit",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrQuestionnaireNotEditable)
}

func TestQuestionnaireService_UploadAnswerFile(t *testing.T) {
	fx := createTestQuestionnaireService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	question := entity.Question{ID: uuid.New(), Text: "Land title", Type: entity.QuestionTypeFile, Required: true}
	questionnaire := &entity.Questionnaire{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Status:     entity.QuestionnaireStatusPending,
		Questions:  []entity.Question{question},
	}
	content := strings.NewReader("%PDF-1.7 land title")

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.questionnaireRepo.EXPECT().FindByID(ctx, questionnaire.ID).Return(questionnaire, nil)
	fx.attachments.EXPECT().
		Save(ctx, "land-title.pdf", "application/pdf", content).
		Return(&service.Attachment{Key: "attachments/2026/08/abc.pdf", ContentType: "application/pdf", Size: 19}, nil)
	fx.questionnaireRepo.EXPECT().
		AttachFile(ctx, questionnaire.ID, question.ID, "attachments/2026/08/abc.pdf").
		Return(nil)

	key, err := fx.service.UploadAnswerFile(ctx, userID, usecase.UploadAnswerFileInput{
		QuestionnaireID: questionnaire.ID,
		QuestionID:      question.ID,
		Filename:        "land-title.pdf",
		ContentType:     "application/pdf",
		Content:         content,
	})

	require.NoError(t, err)
	assert.Equal(t, "attachments/2026/08/abc.pdf", key)
}

func TestQuestionnaireService_UploadAnswerFile_TextQuestionRejected(t *testing.T) {
	fx := createTestQuestionnaireService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	question := entity.Question{ID: uuid.New(), Text: "Q1", Type: entity.QuestionTypeText}
	questionnaire := &entity.Questionnaire{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Status:     entity.QuestionnaireStatusPending,
		Questions:  []entity.Question{question},
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.questionnaireRepo.EXPECT().FindByID(ctx, questionnaire.ID).Return(questionnaire, nil)

	_, err := fx.service.UploadAnswerFile(ctx, userID, usecase.UploadAnswerFileInput{
		QuestionnaireID: questionnaire.ID,
		QuestionID:      question.ID,
		Filename:        "notes.txt",
		ContentType:     "text/plain",
		Content:         strings.NewReader("hello"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotAFileQuestion)
}

func TestQuestionnaireService_DeleteQuestionnaire_ForeignCustomerRejected(t *testing.T) {
	fx := createTestQuestionnaireService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New()}
	questionnaire := &entity.Questionnaire{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
	}

	fx.expectCustomerUser(ctx, userID, customer)
	fx.questionnaireRepo.EXPECT().FindByID(ctx, questionnaire.ID).Return(questionnaire, nil)

	err := fx.service.DeleteQuestionnaire(ctx, userID, questionnaire.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrQuestionnaireAccessDenied)
}
