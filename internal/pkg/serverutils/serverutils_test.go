package serverutils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type topicInput struct {
	Title       string `json:"title" validate:"required,notblank,singleline"`
	Description string `json:"description" validate:"required,notblank,singleline"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		in      topicInput
		wantErr map[string]string
	}{
		{name: "valid", in: topicInput{Title: "Zoning", Description: "Local zoning rules"}},
		{name: "empty title", in: topicInput{Title: "", Description: "x"}, wantErr: map[string]string{"title": "is required"}},
		{name: "blank title", in: topicInput{Title: "   ", Description: "x"}, wantErr: map[string]string{"title": "is required"}},
		{name: "newline", in: topicInput{Title: "a\nb", Description: "x"}, wantErr: map[string]string{"title": "must be a single line"}},
		{name: "carriage return", in: topicInput{Title: "a", Description: "x\ry"}, wantErr: map[string]string{"description": "must be a single line"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			var verr *apperror.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Fields)
		})
	}
}

func TestValidateListingPriceBounds(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		wantErr string
	}{
		{name: "typical", price: 450000},
		{name: "upper bound", price: 1e12},
		{name: "past upper bound", price: 1e19, wantErr: "must be at most 1000000000000"},
		{name: "negative", price: -1, wantErr: "must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(dto.RenderContentRequest{
				ContentTypes: []string{"social-media"},
				Listing:      dto.ListingDetailsDTO{Price: tt.price},
			})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *apperror.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, map[string]string{"price": tt.wantErr}, verr.Fields)
		})
	}
}

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{err: apperror.NewValidationError("title", "is required"), wantCode: fiber.StatusBadRequest},
		{err: fmt.Errorf("load: %w", apperror.ErrTopicNotFound), wantCode: fiber.StatusNotFound},
		{err: apperror.ErrViewClosed, wantCode: fiber.StatusGone},
		{err: fiber.NewError(fiber.StatusUnauthorized, "nope"), wantCode: fiber.StatusUnauthorized},
		{err: &apperror.RedirectError{To: "/coach", Reason: apperror.ErrChatNotFound}, wantCode: fiber.StatusSeeOther},
		{err: io.ErrUnexpectedEOF, wantCode: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/", func(ctx *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantCode, resp.StatusCode)

			var body Response[json.RawMessage]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestRedirectSetsLocation(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/", func(ctx *fiber.Ctx) error {
		return &apperror.RedirectError{To: "/compliance", Reason: apperror.ErrChatNotFound}
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "/compliance", resp.Header.Get(fiber.HeaderLocation))
}

func TestJwtMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", NewJwtMiddleware("secret"), func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
