package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopesValid(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		owned     []string
		active    []string
		want      bool
	}{
		{
			name:      "requested in both sets",
			requested: []string{"read"},
			owned:     []string{"read", "write"},
			active:    []string{"read", "write", "authadmin"},
			want:      true,
		},
		{
			name:      "empty request always valid",
			requested: nil,
			owned:     nil,
			active:    nil,
			want:      true,
		},
		{
			name:      "owned but retired from registry",
			requested: []string{"write"},
			owned:     []string{"write"},
			active:    []string{"read"},
			want:      false,
		},
		{
			name:      "active but not owned",
			requested: []string{"write"},
			owned:     []string{"read"},
			active:    []string{"read", "write"},
			want:      false,
		},
		{
			name:      "one of several missing",
			requested: []string{"read", "write"},
			owned:     []string{"read", "write"},
			active:    []string{"read"},
			want:      false,
		},
		{
			name:      "admin provisioning uses active as owned",
			requested: []string{"read"},
			owned:     []string{"read", "write"},
			active:    []string{"read", "write"},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scopesValid(tt.requested, tt.owned, tt.active))
		})
	}
}
