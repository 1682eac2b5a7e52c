package postgres

import (
	"context"

	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	"canopy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultQuestionnaireListLimit = 100

// questionnaireRepository implements the repository.QuestionnaireRepository interface.
type questionnaireRepository struct {
	db *gorm.DB
}

// NewQuestionnaireRepository is the constructor for questionnaireRepository.
func NewQuestionnaireRepository(db *gorm.DB) repository.QuestionnaireRepository {
	return &questionnaireRepository{
		db: db,
	}
}

// questionnaireRow carries a questionnaire together with joined counterparty names.
type questionnaireRow struct {
	model.QuestionnaireModel
	CustomerName string
	SupplierName string
}

// Create persists a questionnaire together with its questions.
func (repo *questionnaireRepository) Create(ctx context.Context, questionnaire *entity.Questionnaire) error {
	questionnaireM := fromQuestionnaireDomain(questionnaire)

	if err := repo.db.WithContext(ctx).Create(questionnaireM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplierNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create questionnaire")
	}

	questionnaire.ID = questionnaireM.ID
	questionnaire.CreatedAt = questionnaireM.CreatedAt
	questionnaire.UpdatedAt = questionnaireM.UpdatedAt

	if len(questionnaire.Questions) > 0 {
		questionModels := make([]*model.QuestionModel, 0, len(questionnaire.Questions))
		for i := range questionnaire.Questions {
			questionnaire.Questions[i].QuestionnaireID = questionnaireM.ID
			questionModels = append(questionModels, fromQuestionDomain(&questionnaire.Questions[i]))
		}

		if err := repo.db.WithContext(ctx).Create(&questionModels).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create questionnaire questions")
		}

		for i, questionM := range questionModels {
			questionnaire.Questions[i].ID = questionM.ID
		}
	}

	return nil
}

// FindByID retrieves a questionnaire with its questions in display order.
func (repo *questionnaireRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Questionnaire, error) {
	var row questionnaireRow

	if err := repo.db.WithContext(ctx).
		Model(&model.QuestionnaireModel{}).
		Select("questionnaires.*, customers.company_name AS customer_name, suppliers.company_name AS supplier_name").
		Joins("JOIN customers ON customers.id = questionnaires.customer_id").
		Joins("JOIN suppliers ON suppliers.id = questionnaires.supplier_id").
		Where("questionnaires.id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionnaireNotFound
		}

		return nil, errors.Wrap(err, "failed to find questionnaire by ID")
	}

	questionnaire := toQuestionnaireDomain(&row.QuestionnaireModel)
	questionnaire.CustomerName = row.CustomerName
	questionnaire.SupplierName = row.SupplierName

	var questionModels []*model.QuestionModel
	if err := repo.db.WithContext(ctx).
		Where("questionnaire_id = ?", id).
		Order("position ASC").
		Find(&questionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load questionnaire questions")
	}
	for _, questionM := range questionModels {
		questionnaire.Questions = append(questionnaire.Questions, *toQuestionDomain(questionM))
	}

	return questionnaire, nil
}

// List retrieves questionnaires matching the filter, newest first.
// Questions are not loaded.
func (repo *questionnaireRepository) List(ctx context.Context, filter repository.QuestionnaireFilter) ([]*entity.Questionnaire, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultQuestionnaireListLimit
	}

	query := repo.db.WithContext(ctx).
		Model(&model.QuestionnaireModel{}).
		Select("questionnaires.*, customers.company_name AS customer_name, suppliers.company_name AS supplier_name").
		Joins("JOIN customers ON customers.id = questionnaires.customer_id").
		Joins("JOIN suppliers ON suppliers.id = questionnaires.supplier_id")

	if filter.CustomerID != uuid.Nil {
		query = query.Where("questionnaires.customer_id = ?", filter.CustomerID)
	}
	if filter.SupplierID != uuid.Nil {
		query = query.Where("questionnaires.supplier_id = ?", filter.SupplierID)
	}
	if filter.Status != "" {
		query = query.Where("questionnaires.status = ?", filter.Status.String())
	}

	var rows []*questionnaireRow
	if err := query.
		Order("questionnaires.created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list questionnaires")
	}

	questionnaires := make([]*entity.Questionnaire, 0, len(rows))
	for _, row := range rows {
		questionnaire := toQuestionnaireDomain(&row.QuestionnaireModel)
		questionnaire.CustomerName = row.CustomerName
		questionnaire.SupplierName = row.SupplierName
		questionnaires = append(questionnaires, questionnaire)
	}

	return questionnaires, nil
}

// UpdateStatus persists a status transition and optional denial reason.
func (repo *questionnaireRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.QuestionnaireStatus, denialReason string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuestionnaireModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        status.String(),
			"denial_reason": denialReason,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update questionnaire status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuestionnaireNotFound
	}

	return nil
}

// SaveAnswers persists the answers for the given questions.
func (repo *questionnaireRepository) SaveAnswers(ctx context.Context, questionnaireID uuid.UUID, answers map[uuid.UUID]string) error {
	if len(answers) == 0 {
		return nil
	}

	for questionID, answer := range answers {
		result := repo.db.WithContext(ctx).
			Model(&model.QuestionModel{}).
			Where("id = ? AND questionnaire_id = ?", questionID, questionnaireID).
			Update("answer", answer)

		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save questionnaire answer")
		}

		if result.RowsAffected == 0 {
			return repository.ErrQuestionNotFound
		}
	}

	return nil
}

// AttachFile records the blob storage key of an uploaded file on a question.
func (repo *questionnaireRepository) AttachFile(ctx context.Context, questionnaireID, questionID uuid.UUID, attachmentKey string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("id = ? AND questionnaire_id = ?", questionID, questionnaireID).
		Update("attachment_key", attachmentKey)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to attach file to question")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// Delete removes a questionnaire and its questions.
func (repo *questionnaireRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("questionnaire_id = ?", id).
		Delete(&model.QuestionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete questionnaire questions")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QuestionnaireModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete questionnaire")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuestionnaireNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toQuestionnaireDomain converts a GORM QuestionnaireModel to a domain Questionnaire entity.
func toQuestionnaireDomain(data *model.QuestionnaireModel) *entity.Questionnaire {
	if data == nil {
		return nil
	}

	return &entity.Questionnaire{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		SupplierID:   data.SupplierID,
		Title:        data.Title,
		Status:       entity.QuestionnaireStatus(data.Status),
		DenialReason: data.DenialReason,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromQuestionnaireDomain converts a domain Questionnaire entity to a GORM QuestionnaireModel.
func fromQuestionnaireDomain(data *entity.Questionnaire) *model.QuestionnaireModel {
	if data == nil {
		return nil
	}

	return &model.QuestionnaireModel{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		SupplierID:   data.SupplierID,
		Title:        data.Title,
		Status:       data.Status.String(),
		DenialReason: data.DenialReason,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toQuestionDomain converts a GORM QuestionModel to a domain Question.
func toQuestionDomain(data *model.QuestionModel) *entity.Question {
	if data == nil {
		return nil
	}

	return &entity.Question{
		ID:              data.ID,
		QuestionnaireID: data.QuestionnaireID,
		Text:            data.Text,
		Type:            entity.QuestionType(data.Type),
		Options:         data.Options,
		Required:        data.Required,
		Answer:          data.Answer,
		AttachmentKey:   data.AttachmentKey,
		Position:        data.Position,
	}
}

// fromQuestionDomain converts a domain Question to a GORM QuestionModel.
func fromQuestionDomain(data *entity.Question) *model.QuestionModel {
	if data == nil {
		return nil
	}

	return &model.QuestionModel{
		ID:              data.ID,
		QuestionnaireID: data.QuestionnaireID,
		Text:            data.Text,
		Type:            string(data.Type),
		Options:         data.Options,
		Required:        data.Required,
		Answer:          data.Answer,
		AttachmentKey:   data.AttachmentKey,
		Position:        data.Position,
	}
}
