package response

import (
	"errors"

	"github.com/evandrarf/adaptive-learning-be/internal/pkg/apperr"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"

	"github.com/sirupsen/logrus"
)

// Response is either a failure body ({detail, error}) or a raw success
// payload written as-is.
type Response struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"-"`
	Detail     string `json:"detail,omitempty"`
	Error      any    `json:"error,omitempty"`
	Data       any    `json:"-"`
}

func NewInternalServerError() *Response {
	res := &Response{
		Success:    false,
		Detail:     "Internal Server Error",
		StatusCode: fiber.StatusInternalServerError,
	}
	return res
}

func NewFailed(msg string, err error, logger *logrus.Logger) *Response {
	res := &Response{
		Success:    false,
		Detail:     msg,
		StatusCode: fiber.StatusInternalServerError,
	}

	var (
		fe  *fiber.Error
		vfe *validate.FieldsError
		ae  *apperr.Error
	)
	switch {
	case errors.As(err, &vfe):
		res.StatusCode = fiber.StatusBadRequest
		res.Error = vfe.Fields
	case errors.As(err, &fe):
		res.StatusCode = fe.Code
		if fe.Message != "" && fe.Message != msg {
			res.Error = fe.Message
		}
	case errors.As(err, &ae):
		res.StatusCode = apperr.StatusCode(ae.Kind)
	}

	if logger != nil && res.StatusCode >= fiber.StatusInternalServerError {
		logger.WithField("status", res.StatusCode).Error(err)
	}

	return res
}

func NewSuccess(data any) *Response {
	res := &Response{
		Success:    true,
		StatusCode: fiber.StatusOK,
		Data:       data,
	}

	return res
}

func (r *Response) Send(ctx *fiber.Ctx) error {
	if r.Success {
		return ctx.Status(r.StatusCode).JSON(r.Data)
	}
	return ctx.Status(r.StatusCode).JSON(r)
}
