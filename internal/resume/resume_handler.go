package resume

import (
	"io"
	"net/http"

	resumeerrors "jobtrack/internal/resume/errors"
	"jobtrack/internal/shared/apperror"
	"jobtrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxResumeSize = 10 << 20 // 10 MiB

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("resume.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("resume.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("resume request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) readUploadedFile(c *gin.Context) (string, []byte, error) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return "", nil, resumeerrors.ErrFileRequired
	}
	if fileHeader.Size > maxResumeSize {
		return "", nil, resumeerrors.ErrFileTooLarge
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxResumeSize))
	if err != nil {
		return "", nil, err
	}
	return fileHeader.Filename, data, nil
}

func (h *Handler) Create(c *gin.Context) {
	callerID := c.GetString("user_id")
	if callerID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required", nil)
		return
	}

	companyID := c.PostForm("company_id")
	if companyID == "" {
		h.writeServiceError(c, apperror.RequiredField("company_id"))
		return
	}

	fileName, data, err := h.readUploadedFile(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), callerID, CreateResumeRequest{
		CompanyID: companyID,
		FileName:  fileName,
		Data:      data,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateResumeRequest
	if fileName, data, err := h.readUploadedFile(c); err == nil {
		req.FileName = fileName
		req.Data = data
	}

	partial := c.Request.Method == http.MethodPatch
	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req, partial)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
