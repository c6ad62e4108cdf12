package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWriteBusiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found maps to 404", ErrBusiness(CodeNotFound), http.StatusNotFound},
		{"conflict maps to 409", ErrBusiness(CodeConflict), http.StatusConflict},
		{"invalid schedule maps to 400", ErrBusiness(CodeInvalidSchedule), http.StatusBadRequest},
		{"invalid state maps to 400", ErrBusiness(CodeInvalidState), http.StatusBadRequest},
		{"invalid score maps to 400", ErrBusiness(CodeInvalidScore), http.StatusBadRequest},
		{"comment too long maps to 400", ErrBusiness(CodeCommentTooLong), http.StatusBadRequest},
		{"non-business error maps to 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			WriteBusiness(c, tt.err, "mensagem")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestIsBusiness(t *testing.T) {
	assert.True(t, IsBusiness(ErrBusiness(CodeConflict), CodeConflict))
	assert.False(t, IsBusiness(ErrBusiness(CodeConflict), CodeNotFound))
	assert.False(t, IsBusiness(errors.New("boom"), CodeConflict))

	code, ok := BusinessCode(ErrBusiness(CodeInvalidScore))
	assert.True(t, ok)
	assert.Equal(t, CodeInvalidScore, code)
}
