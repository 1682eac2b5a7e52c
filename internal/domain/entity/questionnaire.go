// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuestionType classifies how a question is answered.
type QuestionType string

const (
	QuestionTypeText           QuestionType = "Text"
	QuestionTypeMultipleChoice QuestionType = "Multiple Choice"
	QuestionTypeFile           QuestionType = "File"
)

// NormalizeQuestionType maps the loose type names accepted from clients to
// a canonical QuestionType. Anything unrecognized becomes a text question.
func NormalizeQuestionType(raw string) QuestionType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "radio", "select", "multiple choice":
		return QuestionTypeMultipleChoice
	case "file", "attach", "file upload":
		return QuestionTypeFile
	default:
		return QuestionTypeText
	}
}

// QuestionnaireStatus is the lifecycle state of a questionnaire.
type QuestionnaireStatus string

const (
	QuestionnaireStatusPending   QuestionnaireStatus = "Pending"
	QuestionnaireStatusDraft     QuestionnaireStatus = "Draft"
	QuestionnaireStatusCompleted QuestionnaireStatus = "Completed"
	QuestionnaireStatusDenied    QuestionnaireStatus = "Denied"
)

// String returns the string representation of the QuestionnaireStatus.
func (s QuestionnaireStatus) String() string {
	return string(s)
}

// IsEditable reports whether the supplier may still change answers.
func (s QuestionnaireStatus) IsEditable() bool {
	return s == QuestionnaireStatusPending || s == QuestionnaireStatusDraft
}

var completeTokens = map[string]struct{}{
	"complete": {}, "accept": {}, "submit": {}, "done": {},
}

var denyTokens = map[string]struct{}{
	"deny": {}, "reject": {}, "rejected": {}, "decline": {},
}

// NormalizeSubmitAction maps a free-form submit/deny token to the target
// questionnaire status. It returns ok=false for unrecognized tokens.
func NormalizeSubmitAction(token string) (QuestionnaireStatus, bool) {
	needle := strings.ToLower(strings.TrimSpace(token))
	if _, found := completeTokens[needle]; found {
		return QuestionnaireStatusCompleted, true
	}
	if _, found := denyTokens[needle]; found {
		return QuestionnaireStatusDenied, true
	}

	return "", false
}

// DefaultDenialReason is recorded when a supplier denies a questionnaire
// without giving a reason.
const DefaultDenialReason = "Denied by supplier"

// Question is a single item on a questionnaire, including the supplier's
// answer once given.
type Question struct {
	ID              uuid.UUID    // The Global Unique Identifier (GUID) for the question.
	QuestionnaireID uuid.UUID    // The questionnaire this question belongs to.
	Text            string       // The question text shown to the supplier.
	Type            QuestionType // How the question is answered.
	Options         []string     // Choice options; empty unless Type is Multiple Choice.
	Required        bool         // Required questions block completion until answered.
	Answer          string       // The supplier's answer; empty until answered.
	AttachmentKey   string       // Blob storage key of the uploaded file, for File questions.
	Position        int          // Display order within the questionnaire.
}

// Answered reports whether the question has a usable answer.
func (q Question) Answered() bool {
	if q.Type == QuestionTypeFile {
		return q.AttachmentKey != ""
	}

	return strings.TrimSpace(q.Answer) != ""
}

// Questionnaire is a set of due-diligence questions a customer sends to a
// supplier. The supplier answers in place and either completes or denies it.
type Questionnaire struct {
	ID           uuid.UUID           // The Global Unique Identifier (GUID) for the questionnaire.
	CustomerID   uuid.UUID           // The issuing customer organization.
	SupplierID   uuid.UUID           // The answering supplier organization.
	Title        string              // Short title shown in list views.
	Status       QuestionnaireStatus // Current lifecycle state.
	DenialReason string              // Why the supplier denied it; empty otherwise.
	Questions    []Question          // The questions in display order.
	CreatedAt    time.Time           // Timestamp of when this questionnaire was created.
	UpdatedAt    time.Time           // Timestamp of the last modification.

	// Denormalized display names, populated on reads for list views.
	CustomerName string
	SupplierName string
}

// MissingRequired returns the texts of required questions that are still
// unanswered. Completion is blocked while this is non-empty.
func (q Questionnaire) MissingRequired() []string {
	var missing []string
	for _, question := range q.Questions {
		if question.Required && !question.Answered() {
			missing = append(missing, question.Text)
		}
	}

	return missing
}
