package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	credentialDTO "github.com/johnquangdev/meeting-notes/internal/adapter/dto/credential"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/usecase/credential"
	"github.com/johnquangdev/meeting-notes/pkg/validator"
)

// Credential handles the stored OpenAI API key
type Credential struct {
	svc    *credential.Service
	logger *zap.Logger
}

// NewCredentialHandler creates a new credential handler
func NewCredentialHandler(svc *credential.Service, logger *zap.Logger) *Credential {
	return &Credential{svc: svc, logger: logger}
}

// GetStatus handles GET /credentials
// @Summary      Get API key status
// @Description  Reports whether an OpenAI API key is stored, showing only a masked form
// @Tags         Credentials
// @Produce      json
// @Success      200  {object}  credential.CredentialStatusResponse  "Credential status"
// @Failure      503  {object}  map[string]interface{}               "Credential store unavailable"
// @Router       /credentials [get]
func (h *Credential) GetStatus(c echo.Context) error {
	status, err := h.svc.Status(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToCredentialStatusResponse(status, ""))
}

// SaveKey handles PUT /credentials
// @Summary      Save API key
// @Description  Stores the OpenAI API key used when a request does not carry one
// @Tags         Credentials
// @Accept       json
// @Produce      json
// @Param        request  body      credential.SaveCredentialRequest     true  "API key"
// @Success      200      {object}  credential.CredentialStatusResponse  "Key saved"
// @Failure      400      {object}  map[string]interface{}               "Missing or malformed key"
// @Failure      503      {object}  map[string]interface{}               "Credential store unavailable"
// @Router       /credentials [put]
func (h *Credential) SaveKey(c echo.Context) error {
	var req credentialDTO.SaveCredentialRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(strings.Join(validator.Violations(err), "; ")))
	}

	ctx := c.Request().Context()
	warning, err := h.svc.Save(ctx, req.APIKey)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToCredentialStatusResponse(&credential.Status{
		Configured: true,
		Masked:     credential.Mask(strings.TrimSpace(req.APIKey)),
	}, warning))
}

// ClearKey handles DELETE /credentials
// @Summary      Clear API key
// @Description  Removes the stored OpenAI API key
// @Tags         Credentials
// @Produce      json
// @Success      200  {object}  credential.CredentialStatusResponse  "Key cleared"
// @Failure      503  {object}  map[string]interface{}               "Credential store unavailable"
// @Router       /credentials [delete]
func (h *Credential) ClearKey(c echo.Context) error {
	if err := h.svc.Clear(c.Request().Context()); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToCredentialStatusResponse(&credential.Status{}, ""))
}
