package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/raweer420/CRMBUTECO/internal/apierror"
	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/middleware"
	"github.com/raweer420/CRMBUTECO/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Newf("JSON inválido: %v", err))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// actor resolves the authenticated caller and its capability set from the
// JWT claims set by the auth middleware.
func actor(c *gin.Context) service.Actor {
	claims := middleware.GetClaims(c)
	userID, _ := uuid.Parse(claims.UserID)
	return service.Actor{
		UserID: userID,
		Caps:   domain.CapabilitiesForRole(claims.Role),
	}
}

// respondError maps typed domain failures to HTTP statuses. Unknown errors
// become opaque 500s — the middleware logs them, the client never sees
// internals.
func respondError(c *gin.Context, err error) {
	var (
		notFound     *domain.NotFoundError
		illegal      *domain.IllegalTransitionError
		insufficient *domain.InsufficientPaymentError
		invalid      *domain.ValidationError
		inactive     *domain.InactiveResourceError
		canceled     *domain.AlreadyCanceledError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &illegal):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &canceled):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &insufficient):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	case errors.As(err, &invalid), errors.As(err, &inactive):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
	}
}

// respondAuthError keeps authentication failures opaque: anything short of
// a validation error becomes a generic 401 so the response never reveals
// whether the email exists, the password is wrong or the account is disabled.
func respondAuthError(c *gin.Context, err error) {
	var invalid *domain.ValidationError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusUnauthorized, apierror.New("credenciais inválidas"))
}

// parseIDParam reads a UUID path parameter or writes a 400.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}
