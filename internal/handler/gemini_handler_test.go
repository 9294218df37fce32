package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	apperrors "webclass/internal/errors"
	"webclass/internal/logger"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, query string) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.GenerateContentResponse), args.Error(1)
}

func TestGeminiHandler_Generate(t *testing.T) {
	answer := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText("Go is fun.", genai.RoleModel),
		}},
	}

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockGenerator)
		wantStatus int
		wantError  string
	}{
		{
			name: "forwards query",
			body: `{"userQuery":"Is Go fun?"}`,
			setupMock: func(m *MockGenerator) {
				m.On("Generate", mock.Anything, "Is Go fun?").Return(answer, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing query",
			body:       `{}`,
			setupMock:  func(m *MockGenerator) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "No query provided",
		},
		{
			name:       "empty query",
			body:       `{"userQuery":""}`,
			setupMock:  func(m *MockGenerator) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "No query provided",
		},
		{
			name: "whitespace query forwarded",
			body: `{"userQuery":"   "}`,
			setupMock: func(m *MockGenerator) {
				m.On("Generate", mock.Anything, "   ").Return(answer, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "leading indentation kept",
			body: `{"userQuery":"  indented\ncode block\n"}`,
			setupMock: func(m *MockGenerator) {
				m.On("Generate", mock.Anything, "  indented\ncode block\n").Return(answer, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "upstream failure",
			body: `{"userQuery":"hi"}`,
			setupMock: func(m *MockGenerator) {
				m.On("Generate", mock.Anything, "hi").Return(nil, fmt.Errorf("%w: quota exceeded", apperrors.ErrUpstream))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Error processing your request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockGenerator)
			tt.setupMock(gen)

			e := newEcho()
			e.POST("/gemini", NewGeminiHandler(gen, logger.NewNoop().Logger).Generate)

			rec := doJSON(e, http.MethodPost, "/gemini", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
				assert.NotContains(t, rec.Body.String(), "quota")
			} else {
				assert.Contains(t, rec.Body.String(), "Go is fun.")
			}
			gen.AssertExpectations(t)
		})
	}
}
