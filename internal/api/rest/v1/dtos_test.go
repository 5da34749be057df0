//go:build unit
// +build unit

package v1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddAccountRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   AddAccountRequest
		shouldErr bool
	}{
		{"Valid username", AddAccountRequest{Username: "coindesk"}, false},
		{"Empty username", AddAccountRequest{}, true},
		{"Overlong username", AddAccountRequest{Username: strings.Repeat("a", 101)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestErrorResponse_Creation(t *testing.T) {
	errResp := ErrorResponse{
		Message: "Test error",
	}

	require.Equal(t, "Test error", errResp.Message)
}

func TestInfoResponse_Creation(t *testing.T) {
	infoResp := InfoResponse{
		Message: "Operation successful",
	}

	require.Equal(t, "Operation successful", infoResp.Message)
}
