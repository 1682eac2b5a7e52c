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

// ProfileHandler holds dependencies for organization and contact profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetOrganizationProfile handles fetching the caller's organization profile.
func (h *ProfileHandler) GetOrganizationProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.uc.GetOrganizationProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// SaveOrganizationProfile handles creating or updating the caller's
// organization profile.
func (h *ProfileHandler) SaveOrganizationProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.SaveProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.uc.SaveOrganizationProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile saved successfully")
}

// AddCertificate handles attaching a compliance certificate to the caller's
// organization profile.
func (h *ProfileHandler) AddCertificate(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.AddCertificateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid certificate input")
	}

	certificate, err := h.uc.AddCertificate(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, certificate, "Certificate added successfully")
}

// DeleteCertificate handles removing a certificate from the caller's profile.
func (h *ProfileHandler) DeleteCertificate(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	certificateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid certificate ID")
	}

	if err := h.uc.DeleteCertificate(c.Request().Context(), userID, certificateID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": certificateID.String()}, "Certificate deleted successfully")
}

// GetContactProfile handles fetching the caller's contact-person details.
func (h *ProfileHandler) GetContactProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	contact, err := h.uc.GetContactProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contact, "Contact profile retrieved successfully")
}

// UpdateContactProfile handles updating the caller's contact-person details.
func (h *ProfileHandler) UpdateContactProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.ContactProfile
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	contact, err := h.uc.UpdateContactProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contact, "Contact profile updated successfully")
}
