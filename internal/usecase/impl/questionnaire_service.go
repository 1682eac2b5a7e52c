package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "canopy/internal/delivery/context"
	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	"canopy/internal/domain/service"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// questionnaireService implements the QuestionnaireUsecase interface.
type questionnaireService struct {
	txManager         repository.TransactionManager
	questionnaireRepo repository.QuestionnaireRepository
	partyRepo         repository.PartyRepository
	attachments       service.AttachmentStorage
	logger            *slog.Logger
}

// QuestionnaireServiceParams holds dependencies for questionnaireService, injected by Fx.
type QuestionnaireServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	QuestionnaireRepo repository.QuestionnaireRepository
	PartyRepo         repository.PartyRepository
	Attachments       service.AttachmentStorage
	Logger            *slog.Logger
}

// NewQuestionnaireService is the constructor for questionnaireService.
func NewQuestionnaireService(params QuestionnaireServiceParams) usecase.QuestionnaireUsecase {
	return &questionnaireService{
		txManager:         params.TxManager,
		questionnaireRepo: params.QuestionnaireRepo,
		partyRepo:         params.PartyRepo,
		attachments:       params.Attachments,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *questionnaireService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateQuestionnaire issues a questionnaire from the caller's customer
// organization to a supplier.
func (srv *questionnaireService) CreateQuestionnaire(ctx context.Context, userID uuid.UUID, input usecase.CreateQuestionnaireInput) (*entity.Questionnaire, error) {
	customer, err := requireCustomer(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("questionnaire title is required")
	}
	if len(input.Questions) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("questionnaire needs at least one question")
	}

	if _, err := srv.partyRepo.FindSupplierByID(ctx, input.SupplierID); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "target supplier does not exist")
		}

		return nil, errors.Wrap(err, "failed to verify target supplier")
	}

	questionnaire := &entity.Questionnaire{
		CustomerID: customer.ID,
		SupplierID: input.SupplierID,
		Title:      input.Title,
		Status:     entity.QuestionnaireStatusPending,
	}
	for idx, question := range input.Questions {
		if strings.TrimSpace(question.Text) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("question text is required")
		}

		questionnaire.Questions = append(questionnaire.Questions, entity.Question{
			Text:     question.Text,
			Type:     entity.NormalizeQuestionType(question.Type),
			Options:  question.Options,
			Required: question.Required,
			Position: idx,
		})
	}

	if err := srv.questionnaireRepo.Create(ctx, questionnaire); err != nil {
		srv.log(ctx).Error("Failed to create questionnaire", slog.Any("customerID", customer.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create questionnaire")
	}

	questionnaire.CustomerName = customer.CompanyName
	srv.log(ctx).Info("Questionnaire created",
		slog.Any("questionnaireID", questionnaire.ID),
		slog.Any("supplierID", questionnaire.SupplierID),
		slog.Int("questions", len(questionnaire.Questions)),
	)

	return questionnaire, nil
}

// ListQuestionnaires returns the caller's questionnaires, newest first,
// optionally filtered by status.
func (srv *questionnaireService) ListQuestionnaires(ctx context.Context, userID uuid.UUID, status string) ([]*entity.Questionnaire, error) {
	identity, err := resolveIdentity(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}
	if !identity.HasParty() {
		return nil, errors.Wrap(domainerrors.ErrNoPartyLinked, "cannot list questionnaires")
	}

	filter := repository.QuestionnaireFilter{Status: entity.QuestionnaireStatus(status)}
	if identity.PrimaryRole() == entity.RoleSupplier {
		filter.SupplierID = identity.Supplier.ID
	} else {
		filter.CustomerID = identity.Customer.ID
	}

	questionnaires, err := srv.questionnaireRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questionnaires")
	}

	return questionnaires, nil
}

// GetQuestionnaire returns one questionnaire visible to either party.
func (srv *questionnaireService) GetQuestionnaire(ctx context.Context, userID, questionnaireID uuid.UUID) (*entity.Questionnaire, error) {
	identity, err := resolveIdentity(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	questionnaire, err := srv.loadQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	if !isQuestionnaireParty(identity, questionnaire) {
		return nil, errors.Wrap(domainerrors.ErrQuestionnaireAccessDenied, "caller is not a party to the questionnaire")
	}

	return questionnaire, nil
}

// UploadAnswerFile stores a file answer for a File-type question and
// returns the storage key. The later submit call references the key; raw
// binaries never pass through the submit endpoint.
func (srv *questionnaireService) UploadAnswerFile(ctx context.Context, userID uuid.UUID, input usecase.UploadAnswerFileInput) (string, error) {
	questionnaire, err := srv.loadOwnedQuestionnaire(ctx, userID, input.QuestionnaireID)
	if err != nil {
		return "", err
	}
	if !questionnaire.Status.IsEditable() {
		return "", errors.Wrap(domainerrors.ErrQuestionnaireNotEditable, "cannot upload to a resolved questionnaire")
	}

	question := findQuestion(questionnaire, input.QuestionID)
	if question == nil {
		return "", errors.Wrap(domainerrors.ErrQuestionNotFound, "upload target question not found")
	}
	if question.Type != entity.QuestionTypeFile {
		return "", errors.Wrap(domainerrors.ErrNotAFileQuestion, "upload rejected")
	}

	attachment, err := srv.attachments.Save(ctx, input.Filename, input.ContentType, input.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store answer file")
	}

	if err := srv.questionnaireRepo.AttachFile(ctx, questionnaire.ID, question.ID, attachment.Key); err != nil {
		return "", errors.Wrap(err, "failed to record answer file")
	}

	srv.log(ctx).Info("Answer file uploaded",
		slog.Any("questionnaireID", questionnaire.ID),
		slog.Any("questionID", question.ID),
		slog.String("key", attachment.Key),
	)

	return attachment.Key, nil
}

// SubmitAnswers saves answers and optionally completes or denies the
// questionnaire. Premature completion errors name the unanswered required
// questions and leave the stored status untouched.
func (srv *questionnaireService) SubmitAnswers(ctx context.Context, userID uuid.UUID, input usecase.SubmitAnswersInput) (*entity.Questionnaire, error) {
	questionnaire, err := srv.loadOwnedQuestionnaire(ctx, userID, input.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if !questionnaire.Status.IsEditable() {
		return nil, errors.Wrap(domainerrors.ErrQuestionnaireNotEditable, "cannot answer a resolved questionnaire")
	}

	// Merge the submitted answers onto the in-memory questionnaire so the
	// completion check sees the incoming values.
	for questionID, answer := range input.Answers {
		question := findQuestion(questionnaire, questionID)
		if question == nil {
			return nil, errors.Wrap(domainerrors.ErrQuestionNotFound, "answer references an unknown question")
		}
		question.Answer = answer
	}

	targetStatus, recognized := entity.NormalizeSubmitAction(input.Action)
	denialReason := ""

	switch {
	case recognized && targetStatus == entity.QuestionnaireStatusCompleted:
		if missing := questionnaire.MissingRequired(); len(missing) > 0 {
			return nil, domainerrors.ErrMissingRequiredAnswers.
				WithDetails("unanswered required questions: " + strings.Join(missing, "; "))
		}
	case recognized && targetStatus == entity.QuestionnaireStatusDenied:
		denialReason = strings.TrimSpace(input.Message)
		if denialReason == "" {
			denialReason = entity.DefaultDenialReason
		}
	default:
		// Unrecognized or empty action: save progress as a draft.
		targetStatus = entity.QuestionnaireStatusDraft
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		questionnaireRepo := repoFactory.NewQuestionnaireRepository()

		if len(input.Answers) > 0 {
			if err := questionnaireRepo.SaveAnswers(ctx, questionnaire.ID, input.Answers); err != nil {
				return errors.Wrap(err, "failed to save answers")
			}
		}

		if err := questionnaireRepo.UpdateStatus(ctx, questionnaire.ID, targetStatus, denialReason); err != nil {
			return errors.Wrap(err, "failed to update questionnaire status")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute submit answers transaction", slog.Any("questionnaireID", questionnaire.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute submit answers transaction")
	}

	questionnaire.Status = targetStatus
	questionnaire.DenialReason = denialReason
	srv.log(ctx).Info("Questionnaire answers submitted",
		slog.Any("questionnaireID", questionnaire.ID),
		slog.String("status", questionnaire.Status.String()),
	)

	return questionnaire, nil
}

// DeleteQuestionnaire removes a questionnaire issued by the caller.
func (srv *questionnaireService) DeleteQuestionnaire(ctx context.Context, userID, questionnaireID uuid.UUID) error {
	customer, err := requireCustomer(ctx, srv.partyRepo, userID)
	if err != nil {
		return err
	}

	questionnaire, err := srv.loadQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return err
	}
	if questionnaire.CustomerID != customer.ID {
		return errors.Wrap(domainerrors.ErrQuestionnaireAccessDenied, "questionnaire was issued by another customer")
	}

	if err := srv.questionnaireRepo.Delete(ctx, questionnaireID); err != nil {
		return errors.Wrap(err, "failed to delete questionnaire")
	}

	srv.log(ctx).Info("Questionnaire deleted", slog.Any("questionnaireID", questionnaireID))

	return nil
}

func (srv *questionnaireService) loadQuestionnaire(ctx context.Context, questionnaireID uuid.UUID) (*entity.Questionnaire, error) {
	questionnaire, err := srv.questionnaireRepo.FindByID(ctx, questionnaireID)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionnaireNotFound) {
			return nil, errors.Wrap(domainerrors.ErrQuestionnaireNotFound, "questionnaire lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load questionnaire")
	}

	return questionnaire, nil
}

// loadOwnedQuestionnaire loads a questionnaire addressed to the caller's
// supplier organization.
func (srv *questionnaireService) loadOwnedQuestionnaire(ctx context.Context, userID, questionnaireID uuid.UUID) (*entity.Questionnaire, error) {
	supplier, err := requireSupplier(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	questionnaire, err := srv.loadQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire.SupplierID != supplier.ID {
		return nil, errors.Wrap(domainerrors.ErrQuestionnaireAccessDenied, "questionnaire is addressed to another supplier")
	}

	return questionnaire, nil
}

func findQuestion(questionnaire *entity.Questionnaire, questionID uuid.UUID) *entity.Question {
	for i := range questionnaire.Questions {
		if questionnaire.Questions[i].ID == questionID {
			return &questionnaire.Questions[i]
		}
	}

	return nil
}

// isQuestionnaireParty reports whether the identity sits on either side of
// the questionnaire.
func isQuestionnaireParty(identity *entity.Identity, questionnaire *entity.Questionnaire) bool {
	if identity.IsCustomer() && identity.Customer.ID == questionnaire.CustomerID {
		return true
	}
	if identity.IsSupplier() && identity.Supplier.ID == questionnaire.SupplierID {
		return true
	}

	return false
}
