package handler

import (
	"log/slog"
	"net/http"

	"canopy/internal/delivery/http/response"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuestionnaireHandler holds dependencies for questionnaire workflow handlers.
type QuestionnaireHandler struct {
	uc     usecase.QuestionnaireUsecase
	logger *slog.Logger
}

// NewQuestionnaireHandler is the constructor for QuestionnaireHandler, injected by Fx.
func NewQuestionnaireHandler(uc usecase.QuestionnaireUsecase, logger *slog.Logger) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateQuestionnaire handles a customer issuing a questionnaire to a supplier.
func (h *QuestionnaireHandler) CreateQuestionnaire(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateQuestionnaireInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid questionnaire input")
	}

	questionnaire, err := h.uc.CreateQuestionnaire(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, questionnaire, "Questionnaire created successfully")
}

// ListQuestionnaires handles listing the caller's questionnaires.
func (h *QuestionnaireHandler) ListQuestionnaires(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	questionnaires, err := h.uc.ListQuestionnaires(c.Request().Context(), userID, c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, questionnaires, "Questionnaires retrieved successfully")
}

// GetQuestionnaire handles fetching one questionnaire visible to the caller.
func (h *QuestionnaireHandler) GetQuestionnaire(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	questionnaireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid questionnaire ID")
	}

	questionnaire, err := h.uc.GetQuestionnaire(c.Request().Context(), userID, questionnaireID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, questionnaire, "Questionnaire retrieved successfully")
}

// UploadAnswerFile handles storing a file answer for a File-type question.
// The returned storage key is what the client submits as the answer value.
func (h *QuestionnaireHandler) UploadAnswerFile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	questionnaireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid questionnaire ID")
	}
	questionID, err := uuid.Parse(c.Param("questionID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid question ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "File is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	key, err := h.uc.UploadAnswerFile(c.Request().Context(), userID, usecase.UploadAnswerFileInput{
		QuestionnaireID: questionnaireID,
		QuestionID:      questionID,
		Filename:        fileHeader.Filename,
		ContentType:     fileHeader.Header.Get("Content-Type"),
		Content:         file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"key": key}, "File uploaded successfully")
}

// SubmitAnswers handles a supplier saving, completing or denying a
// questionnaire.
func (h *QuestionnaireHandler) SubmitAnswers(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	questionnaireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid questionnaire ID")
	}

	var input usecase.SubmitAnswersInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid answers input")
	}
	input.QuestionnaireID = questionnaireID

	questionnaire, err := h.uc.SubmitAnswers(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, questionnaire, "Answers submitted successfully")
}

// DeleteQuestionnaire handles removing a questionnaire issued by the caller.
func (h *QuestionnaireHandler) DeleteQuestionnaire(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	questionnaireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid questionnaire ID")
	}

	if err := h.uc.DeleteQuestionnaire(c.Request().Context(), userID, questionnaireID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": questionnaireID.String()}, "Questionnaire deleted successfully")
}
