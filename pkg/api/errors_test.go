package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mnemonic-nexus/mnx/pkg/projector"
	"github.com/mnemonic-nexus/mnx/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation error", services.NewValidationError("branch", "bad branch"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("ctx"), services.ErrNotFound), http.StatusNotFound},
		{"unknown projector", projector.ErrUnknownProjector, http.StatusNotFound},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}
